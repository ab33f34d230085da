package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const identityContextKey = "auth.identity"

// Identity is the authenticated principal extracted from the session token.
// The external identity provider issues the token; we only verify and read
// it, we never mint one for end users.
type Identity struct {
	Subject         string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

// IdentityFrom returns the identity set by JWTAuth for this request.
func IdentityFrom(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityContextKey).(Identity)
	return id, ok
}

func claimString(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}

// JWTAuth verifies a Bearer token (HS256, shared secret with the identity
// provider) and stores the caller's identity in the request context.
func JWTAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			raw := strings.TrimSpace(strings.TrimPrefix(header, prefix))

			token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token claims"})
			}
			sub := claimString(claims, "sub")
			if sub == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "token missing subject"})
			}

			c.Set(identityContextKey, Identity{
				Subject:         sub,
				Email:           claimString(claims, "email"),
				FirstName:       claimString(claims, "first_name"),
				LastName:        claimString(claims, "last_name"),
				ProfileImageURL: claimString(claims, "profile_image_url"),
			})
			return next(c)
		}
	}
}
