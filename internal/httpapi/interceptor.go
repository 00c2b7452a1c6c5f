package httpapi

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"horse.fit/landing/internal/language"
	"horse.fit/landing/internal/templates"
)

var errorMessages = map[int]string{
	http.StatusNotFound:            "Page Not Found",
	http.StatusBadRequest:          "Bad Request",
	http.StatusInternalServerError: "Ops! Something is wrong, please try again later.",
}

// ErrorMessage returns the human readable message for a watched status code.
func ErrorMessage(status int) (string, bool) {
	msg, ok := errorMessages[status]
	return msg, ok
}

// ErrorPageRenderer renders the error template.
type ErrorPageRenderer interface {
	RenderErrorPage(ctx templates.ErrorContext) ([]byte, error)
}

// ErrorInterceptor rewrites responses carrying a watched status code into
// the rendered error page, or into a plain-text message when the page
// cannot be rendered. Other responses pass through untouched.
type ErrorInterceptor struct {
	pages  ErrorPageRenderer
	logger zerolog.Logger
}

func NewErrorInterceptor(pages ErrorPageRenderer, logger zerolog.Logger) *ErrorInterceptor {
	return &ErrorInterceptor{pages: pages, logger: logger}
}

// Intercept never fails: the fallback path does no template lookup.
func (i *ErrorInterceptor) Intercept(resp Response) Response {
	message, watched := ErrorMessage(resp.Status)
	if !watched {
		return resp
	}

	fallback := plainTextResponse(resp.Status, message)
	if i == nil {
		return fallback
	}
	if i.pages == nil {
		i.logger.Error().Int("status", resp.Status).Msg("no error page renderer configured")
		return fallback
	}

	// Error pages are always rendered in the default language.
	body, err := i.pages.RenderErrorPage(templates.ErrorContext{
		Lang:       language.Default.Code(),
		Error:      message,
		StatusCode: strconv.Itoa(resp.Status),
	})
	if err != nil {
		i.logger.Error().Err(err).Int("status", resp.Status).Msg("error page render failed")
		i.logger.Warn().Int("status", resp.Status).Msg("using plain text error fallback")
		return fallback
	}

	i.logger.Debug().Int("status", resp.Status).Msg("error page rendered")
	return htmlResponse(resp.Status, body)
}
