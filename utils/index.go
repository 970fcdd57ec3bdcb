package utils

import (
	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// ProblemResponse writes a problem+json body for failures the caller cannot fix.
func ProblemResponse(c *fiber.Ctx, status int, detail string) error {
	c.Status(status)
	return c.JSON(fiber.Map{
		"title":  "An error occurred while processing your request.",
		"status": status,
		"detail": detail,
	}, "application/problem+json")
}

// NotFound answers with an empty 404.
func NotFound(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNotFound)
}
