package server

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/phenobase/trait-extractor/internal/api"
)

// BearerAuth guards the peer API with a static key. When no key is
// configured, auth is disabled entirely. A missing header is 401, a
// mismatched key 403; comparison is constant-time.
func BearerAuth(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if apiKey == "" {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing authorization header"})
			}
			token := strings.TrimPrefix(header, "Bearer ")
			if token == header {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "malformed authorization header"})
			}
			if subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
				return c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "invalid api key"})
			}
			return next(c)
		}
	}
}
