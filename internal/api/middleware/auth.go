package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Auth validates the JWT and injects claims into context. The user_id claim
// is normalised to int64 so handlers never deal with JSON number decoding.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}
			if err := injectClaims(c, authHeader, jwtSecret); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// AuthOptional injects claims when a bearer token is present and valid, and
// lets the request through anonymously when the header is absent. A present
// but invalid token is still rejected.
func AuthOptional(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}
			if err := injectClaims(c, authHeader, jwtSecret); err != nil {
				return err
			}
			return next(c)
		}
	}
}

func injectClaims(c echo.Context, authHeader, jwtSecret string) error {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	c.Set("username", claims["username"])
	c.Set("role", claims["role"])

	userID, _ := claims["user_id"].(float64)
	c.Set("user_id", int64(userID))

	return nil
}
