package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type JWT struct {
	Secret []byte
}

func NewJWT(secret []byte) *JWT {
	return &JWT{Secret: secret}
}

// Require parses the bearer token and, when roles are given, gates the route
// to those roles. The claims land in echo context under "user_id", "email"
// and "role".
func (m *JWT) Require(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
			}

			claims, err := ClaimsFromToken(tokenStr, m.Secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
			}

			if len(roles) > 0 && !hasRole(claims.Role, roles) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}

			c.Set("user_id", claims.Subject)
			c.Set("email", claims.Email)
			c.Set("role", claims.Role)
			return next(c)
		}
	}
}

func hasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
