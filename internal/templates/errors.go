package templates

import (
	"errors"
	"fmt"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrRenderFailure    = errors.New("template render failed")
)

// Kind classifies a RenderError.
type Kind int

const (
	KindTemplateNotFound Kind = iota + 1
	KindRenderFailure
)

func (k Kind) String() string {
	switch k {
	case KindTemplateNotFound:
		return "template_not_found"
	case KindRenderFailure:
		return "render_failure"
	default:
		return "unknown"
	}
}

// RenderError is returned for every failed render. It matches
// ErrTemplateNotFound or ErrRenderFailure through errors.Is.
type RenderError struct {
	Kind     Kind
	Template string
	Err      error
}

func (e *RenderError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("render %s: %s", e.Template, e.sentinel())
	}
	return fmt.Sprintf("render %s: %s: %v", e.Template, e.sentinel(), e.Err)
}

func (e *RenderError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

func (e *RenderError) sentinel() error {
	if e.Kind == KindTemplateNotFound {
		return ErrTemplateNotFound
	}
	return ErrRenderFailure
}
