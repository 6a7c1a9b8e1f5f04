package middleware

import (
	"context"
	"errors"

	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/apierr"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const principalKey = "principal_id"

// TokenResolver maps a token key to the id of the user it was issued to.
type TokenResolver interface {
	ResolveToken(ctx context.Context, key string) (uint, error)
}

// TokenAuth verifies the bearer token signature and then confirms the key
// is still on record. The resolved principal id is stored in locals.
func TokenAuth(secret string, resolver TokenResolver) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(secret)},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return apierr.ErrTokenUnauthorized
			}
			principalID, err := resolver.ResolveToken(c.UserContext(), token.Raw)
			if err != nil {
				return err
			}
			c.Locals(principalKey, principalID)
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				return apierr.ErrTokenMissing
			}
			return apierr.ErrTokenUnauthorized
		},
	})
}

// PrincipalID returns the user id resolved by TokenAuth.
func PrincipalID(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals(principalKey).(uint)
	if !ok {
		return 0, apierr.ErrTokenMissing
	}
	return id, nil
}
