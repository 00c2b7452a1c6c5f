// Package locale holds the translated copy shown on the index page.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"

	"horse.fit/landing/internal/language"
)

//go:embed active.*.toml
var messageFS embed.FS

const (
	msgIndexTitle      = "index_title"
	msgIndexHeading    = "index_heading"
	msgIndexTagline    = "index_tagline"
	msgIndexColorLabel = "index_color_label"
)

// IndexCopy is the translated text of the index page.
type IndexCopy struct {
	Title      string
	Heading    string
	Tagline    string
	ColorLabel string
}

// Catalog is a go-i18n bundle holding one message file per supported
// language. It is read-only once loaded.
type Catalog struct {
	bundle *i18n.Bundle
}

// Load reads the message files compiled into the binary.
func Load() (*Catalog, error) {
	return LoadFS(messageFS)
}

// LoadFS reads active.<code>.toml for every supported language from fsys.
// Every language must translate every message the default language defines.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	bundle := i18n.NewBundle(language.Default.Tag())
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	ids := make(map[language.Language]map[string]struct{}, len(language.Supported()))
	for _, lang := range language.Supported() {
		path := fmt.Sprintf("active.%s.toml", lang.Code())
		file, err := bundle.LoadMessageFileFS(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		set := make(map[string]struct{}, len(file.Messages))
		for _, msg := range file.Messages {
			set[msg.ID] = struct{}{}
		}
		ids[lang] = set
	}

	defaults := ids[language.Default]
	if len(defaults) == 0 {
		return nil, fmt.Errorf("no messages defined for default language %q", language.Default.Code())
	}
	for _, lang := range language.Supported() {
		var missing []string
		for id := range defaults {
			if _, ok := ids[lang][id]; !ok {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			return nil, fmt.Errorf("language %q is missing messages: %s", lang.Code(), strings.Join(missing, ", "))
		}
	}

	return &Catalog{bundle: bundle}, nil
}

// IndexCopy returns the index page text in lang.
func (c *Catalog) IndexCopy(lang language.Language) IndexCopy {
	if c == nil || c.bundle == nil {
		return IndexCopy{}
	}
	localizer := i18n.NewLocalizer(c.bundle, lang.Code(), language.Default.Code())
	return IndexCopy{
		Title:      localize(localizer, msgIndexTitle),
		Heading:    localize(localizer, msgIndexHeading),
		Tagline:    localize(localizer, msgIndexTagline),
		ColorLabel: localize(localizer, msgIndexColorLabel),
	}
}

// localize falls back to the message ID, which LoadFS makes unreachable for
// the IDs above.
func localize(localizer *i18n.Localizer, id string) string {
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
