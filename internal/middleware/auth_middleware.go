package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ashu-89/FoodOrderingApp-BackEnd-1/internal/model"
	"github.com/ashu-89/FoodOrderingApp-BackEnd-1/internal/services"

	"github.com/labstack/echo/v4"
)

const sessionContextKey = "customer_auth"

// BearerToken extracts the access token from the Authorization header.
// Returns "" when the header is missing or not a bearer scheme.
func BearerToken(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.Fields(auth)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

// TokenAuth validates the bearer token against the session store and puts
// the session on the request context. Validation failures keep their stable
// codes; all of them map to 403 like any other authorization failure.
func TokenAuth(authSvc *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := BearerToken(c)
			if token == "" {
				return c.JSON(http.StatusForbidden, services.ErrNotLoggedIn)
			}
			auth, err := authSvc.ValidateToken(c.Request().Context(), token)
			if err != nil {
				var apiErr *services.APIError
				if errors.As(err, &apiErr) {
					return c.JSON(http.StatusForbidden, apiErr)
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
			}
			c.Set(sessionContextKey, auth)
			return next(c)
		}
	}
}

// GetSession returns the session attached by TokenAuth, or nil.
func GetSession(c echo.Context) *model.CustomerAuth {
	v := c.Get(sessionContextKey)
	if v == nil {
		return nil
	}
	if a, ok := v.(*model.CustomerAuth); ok {
		return a
	}
	return nil
}
