package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is a fully formed reply: status, content type and body. Handlers
// build one and the server writes it through the ErrorInterceptor.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

func htmlResponse(status int, body []byte) Response {
	return Response{
		Status:      status,
		ContentType: echo.MIMETextHTMLCharsetUTF8,
		Body:        body,
	}
}

func plainTextResponse(status int, message string) Response {
	return Response{
		Status:      status,
		ContentType: echo.MIMETextPlainCharsetUTF8,
		Body:        []byte(message),
	}
}

func internalServerError() Response {
	return plainTextResponse(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func (s *Server) write(c echo.Context, resp Response) error {
	resp = s.interceptor.Intercept(resp)
	return c.Blob(resp.Status, resp.ContentType, resp.Body)
}
