package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const identityContextKey = "auth.identity"

// Middleware gates a route on a verified bearer credential. The identity is
// stashed in the echo context for the handler.
func Middleware(provider Provider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
			}

			ident, err := provider.VerifyToken(c.Request().Context(), token)
			if err != nil {
				logrus.Warnf("token verification failed: %v", err)
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
			}

			c.Set(identityContextKey, ident)
			return next(c)
		}
	}
}

func IdentityFromContext(c echo.Context) (*Identity, bool) {
	ident, ok := c.Get(identityContextKey).(*Identity)
	return ident, ok
}
