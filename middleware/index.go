package middleware

import (
	"errors"
	"strings"

	"oneclickticket/constants"
	"oneclickticket/helper"
	"oneclickticket/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var errNoToken = errors.New("no token")

// tokenFromRequest reads the access_token cookie, then an Authorization: Bearer header.
func tokenFromRequest(c *fiber.Ctx) string {
	token := c.Cookies("access_token")
	if token == "" {
		auth := c.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return token
}

func authenticate(c *fiber.Ctx) (*jwt.Token, error) {
	token := tokenFromRequest(c)
	if token == "" {
		return nil, errNoToken
	}
	jwtToken, err := helper.ParseToken(token)
	if err != nil {
		return nil, err
	}
	if !jwtToken.Valid {
		return nil, errors.New("token is not valid")
	}
	if _, ok := helper.ClaimFromToken(jwtToken); !ok {
		return nil, errors.New("token has no account")
	}
	return jwtToken, nil
}

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		jwtToken, err := authenticate(c)
		if errors.Is(err, errNoToken) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, err)
		}
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}
