package handler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"donorlink/internal/auth"
	apperrors "donorlink/internal/errors"
)

// respondError maps a domain error to its status code and {"err": ...} body.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// callerClaims extracts the verified claims the JWT middleware stored on the
// context. Returns nil when the route is not behind the middleware.
func callerClaims(c echo.Context) *auth.Claims {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
