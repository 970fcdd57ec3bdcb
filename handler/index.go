package handler

import (
	"errors"

	"oneclickticket/constants"
	"oneclickticket/database"
	"oneclickticket/model"
	"oneclickticket/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals(constants.CSRF_CONTEXT_KEY).(string)
	return token
}

// renderForm answers a create or edit page, with errors when a submit was rejected.
func renderForm(c *fiber.Ctx, data any, errs model.FieldErrors, options map[string][]model.SelectOption) error {
	if errs == nil {
		errs = model.FieldErrors{}
	}
	return c.Status(fiber.StatusOK).JSON(model.FormView{
		Model:     data,
		Errors:    errs,
		Options:   options,
		CsrfToken: csrfToken(c),
	})
}

// failure maps store errors onto responses.
func failure(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return utils.NotFound(c)
	case errors.Is(err, database.ErrConflict):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.CONCURRENCY_CONFLICT, err)
	case errors.Is(err, database.ErrSetMissing):
		return utils.ProblemResponse(c, fiber.StatusInternalServerError, err.Error())
	default:
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL, err)
	}
}

func inputId(c *fiber.Ctx) uint {
	id, _ := c.Locals("inputId").(uint)
	return id
}
