package httpapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"horse.fit/landing/internal/globaltime"
	"horse.fit/landing/internal/language"
	"horse.fit/landing/internal/locale"
	"horse.fit/landing/internal/templates"
)

const headerAcceptLanguage = "Accept-Language"

// IndexPageRenderer renders the index template.
type IndexPageRenderer interface {
	RenderIndex(ctx templates.IndexContext) ([]byte, error)
}

// IndexCopySource supplies the translated index text.
type IndexCopySource interface {
	IndexCopy(lang language.Language) locale.IndexCopy
}

// IndexHandler builds the landing page.
type IndexHandler struct {
	pages   IndexPageRenderer
	catalog IndexCopySource
	color   string
	logger  zerolog.Logger
}

func NewIndexHandler(pages IndexPageRenderer, catalog IndexCopySource, color string, logger zerolog.Logger) *IndexHandler {
	return &IndexHandler{
		pages:   pages,
		catalog: catalog,
		color:   color,
		logger:  logger,
	}
}

// Build renders the page for the given lang query value and Accept-Language
// header. A render failure yields a bare 500; the error page is produced by
// the ErrorInterceptor, never by a second render here.
func (h *IndexHandler) Build(queryLang, acceptLanguage string) Response {
	start := globaltime.Now()
	lang := language.Resolve(queryLang, acceptLanguage)

	text := locale.IndexCopy{}
	if h.catalog != nil {
		text = h.catalog.IndexCopy(lang)
	}

	body, err := h.pages.RenderIndex(templates.IndexContext{
		Lang:       lang.Code(),
		Color:      h.color,
		Title:      text.Title,
		Heading:    text.Heading,
		Tagline:    text.Tagline,
		ColorLabel: text.ColorLabel,
	})
	if err != nil {
		h.logger.Error().Err(err).Str("lang", lang.Code()).Msg("index render failed")
		return internalServerError()
	}

	h.logger.Info().
		Str("lang", lang.Code()).
		Dur("render", globaltime.Since(start)).
		Msg("index page dispatched")
	return htmlResponse(http.StatusOK, body)
}

func (s *Server) handleIndex(c echo.Context) error {
	req := c.Request()
	accept := strings.Join(req.Header.Values(headerAcceptLanguage), ",")
	return s.write(c, s.index.Build(c.QueryParam("lang"), accept))
}
