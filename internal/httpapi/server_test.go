package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"horse.fit/landing/internal/locale"
	"horse.fit/landing/internal/templates"
)

func newTestServer(t *testing.T, pages *templates.Store) *Server {
	t.Helper()
	catalog, err := locale.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return NewServer(pages, catalog, "blue", zerolog.Nop(), Options{})
}

func serve(s *Server, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestIndexQueryLanguage(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, mustLoadTemplates(t))
	rec := serve(s, http.MethodGet, "/?lang=es", map[string]string{"Accept-Language": "pt;q=1.0"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMETextHTML) {
		t.Fatalf("unexpected content type: %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<html lang="es">`) || !strings.Contains(body, "Bienvenido") {
		t.Fatalf("expected spanish page, got:\n%s", body)
	}
}

func TestIndexAcceptLanguage(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, mustLoadTemplates(t))
	rec := serve(s, http.MethodGet, "/", map[string]string{"Accept-Language": "pt;q=1.0"})

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `<html lang="pt">`) {
		t.Fatalf("expected portuguese page, got %d:\n%s", rec.Code, rec.Body.String())
	}
}

func TestIndexIgnoresUnsupportedQueryLanguage(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, mustLoadTemplates(t))
	rec := serve(s, http.MethodGet, "/?lang=fr", nil)

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `<html lang="en">`) {
		t.Fatalf("expected english page, got %d:\n%s", rec.Code, rec.Body.String())
	}
}

func TestUnknownRouteRendersNotFoundPage(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, mustLoadTemplates(t))
	rec := serve(s, http.MethodGet, "/does-not-exist", nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMETextHTML) {
		t.Fatalf("unexpected content type: %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "Page Not Found") {
		t.Fatalf("expected not found page, got:\n%s", rec.Body.String())
	}
}

func TestIndexRenderFailureRendersErrorPage(t *testing.T) {
	t.Parallel()

	pages, err := templates.Parse(templates.Embedded(), templates.Error)
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	s := newTestServer(t, pages)
	rec := serve(s, http.MethodGet, "/", nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Ops! Something is wrong, please try again later.") || !strings.Contains(body, "<html") {
		t.Fatalf("expected rendered error page, got:\n%s", body)
	}
}

func TestPanicIsInterceptedAsServerError(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, mustLoadTemplates(t))
	s.echo.GET("/boom", func(echo.Context) error {
		panic("boom")
	})
	s.echo.GET("/bad", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "nope")
	})
	s.echo.GET("/plain", func(echo.Context) error {
		return errors.New("unexpected")
	})

	tests := []struct {
		path    string
		status  int
		message string
	}{
		{path: "/boom", status: http.StatusInternalServerError, message: "Ops! Something is wrong"},
		{path: "/bad", status: http.StatusBadRequest, message: "Bad Request"},
		{path: "/plain", status: http.StatusInternalServerError, message: "Ops! Something is wrong"},
	}
	for _, tt := range tests {
		rec := serve(s, http.MethodGet, tt.path, nil)
		if rec.Code != tt.status || !strings.Contains(rec.Body.String(), tt.message) {
			t.Fatalf("%s: unexpected response %d:\n%s", tt.path, rec.Code, rec.Body.String())
		}
	}
}

func TestMethodNotAllowedIsNotIntercepted(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, mustLoadTemplates(t))
	rec := serve(s, http.MethodPost, "/", nil)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMETextPlain) {
		t.Fatalf("unexpected content type: %q", ct)
	}
	if rec.Body.String() != "Method Not Allowed" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, mustLoadTemplates(t))
	rec := serve(s, http.MethodGet, "/", nil)

	want := map[string]string{
		"X-DNS-Prefetch-Control": "off",
		"X-XSS-Protection":       "1; mode=block",
		"X-Content-Type-Options": "nosniff",
	}
	for header, value := range want {
		if got := rec.Header().Get(header); got != value {
			t.Fatalf("%s: got %q want %q", header, got, value)
		}
	}
	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Fatalf("expected request id header")
	}
}

func TestStaticFiles(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, mustLoadTemplates(t))

	rec := serve(s, http.MethodGet, "/static/css/site.css", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), ".page") {
		t.Fatalf("expected stylesheet, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/css") {
		t.Fatalf("unexpected stylesheet content type: %q", ct)
	}

	rec = serve(s, http.MethodGet, "/static/css/", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "site.css") {
		t.Fatalf("expected directory listing, got %d:\n%s", rec.Code, rec.Body.String())
	}

	rec = serve(s, http.MethodGet, "/static/missing.js", nil)
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), "Page Not Found") {
		t.Fatalf("expected intercepted 404, got %d:\n%s", rec.Code, rec.Body.String())
	}
}

func TestGzipResponse(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, mustLoadTemplates(t))
	rec := serve(s, http.MethodGet, "/", map[string]string{echo.HeaderAcceptEncoding: "gzip"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderContentEncoding); got != "gzip" {
		t.Fatalf("expected gzip encoding, got %q", got)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, mustLoadTemplates(t))
	rec := serve(s, http.MethodGet, "/api/v1/health", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload struct {
		Status string         `json:"status"`
		Data   map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode health payload: %v", err)
	}
	if payload.Status != "success" || payload.Data["service"] != "landing" {
		t.Fatalf("unexpected health payload: %+v", payload)
	}
}

func TestNewServerDefaults(t *testing.T) {
	t.Parallel()

	s := NewServer(nil, nil, "blue", zerolog.Nop(), Options{})
	if s.opts.Host != "0.0.0.0" || s.opts.Port != 5000 || s.opts.BodyLimit != "4K" {
		t.Fatalf("unexpected defaults: %+v", s.opts)
	}
	if err := s.Start(context.Background()); err == nil {
		t.Fatalf("expected start to fail without templates")
	}
}
