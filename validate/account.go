package validate

import (
	"oneclickticket/model"

	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return bindJSON[model.RegisterInput]()
}

func Login() fiber.Handler {
	return bindJSON[model.LoginInput]()
}
