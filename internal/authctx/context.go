// Package authctx reads the acting user out of the verified JWT once, at the
// HTTP boundary. Services receive actor id and role as explicit arguments and
// never touch request state.
package authctx

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/looplineapp/loopline-backend/internal/moderation"
)

// UserID extracts the user UUID from JWT claims in context.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := tokenClaims(c)
	if err != nil {
		return uuid.Nil, err
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}

// Role extracts the actor role from JWT claims. Missing or malformed claims
// degrade to RoleUser.
func Role(c *fiber.Ctx) moderation.Role {
	claims, err := tokenClaims(c)
	if err != nil {
		return moderation.RoleUser
	}
	role, _ := claims["role"].(string)
	return moderation.ParseRole(role)
}

// Email extracts the email claim, empty when absent.
func Email(c *fiber.Ctx) string {
	claims, err := tokenClaims(c)
	if err != nil {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}

func tokenClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, errors.New("invalid token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
