package handler

import (
	"oneclickticket/constants"
	"oneclickticket/database"
	"oneclickticket/event"
	"oneclickticket/helper"
	"oneclickticket/model"
	"oneclickticket/utils"
	"oneclickticket/validate"

	"github.com/gofiber/fiber/v2"
)

const cinemaListPath = "/Cinemas"

func GetCinemas(c *fiber.Ctx) error {
	set, err := database.Of[model.Cinema](database.Ctx)
	if err != nil {
		return failure(c, err)
	}
	cinemas, err := set.All(c.UserContext())
	if err != nil {
		return failure(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cinemas)
}

// GetCinemaById serves both the detail and the delete confirmation page.
func GetCinemaById(c *fiber.Ctx) error {
	set, err := database.Of[model.Cinema](database.Ctx)
	if err != nil {
		return failure(c, err)
	}
	cinema, err := set.Find(c.UserContext(), inputId(c))
	if err != nil {
		return failure(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cinema)
}

func CreateCinemaForm(c *fiber.Ctx) error {
	return renderForm(c, model.CinemaInput{}, nil, nil)
}

func CreateCinema(c *fiber.Ctx) error {
	ctx := c.UserContext()
	input := c.Locals("input").(*model.CinemaInput)

	set, err := database.Of[model.Cinema](database.Ctx)
	if err != nil {
		return failure(c, err)
	}

	cinema, errs, err := validate.Cinema(ctx, *input, validate.Create)
	if err != nil {
		return failure(c, err)
	}
	if len(errs) > 0 {
		return renderForm(c, input, errs, nil)
	}

	cinema.ID = 0
	cinema.Version = 0
	if cinema.Slug, err = database.GenerateUniqueSlug[model.Cinema](set.DB(ctx), cinema.Name, 0); err != nil {
		return failure(c, err)
	}
	if err := set.Add(ctx, &cinema); err != nil {
		return failure(c, err)
	}

	helper.InvalidateOptions(ctx, helper.CinemaOptionsKey)
	event.Emit("cinema", constants.EVENT_CREATED, cinema.ID, helper.Now())
	return c.Redirect(cinemaListPath, fiber.StatusFound)
}

func EditCinemaForm(c *fiber.Ctx) error {
	set, err := database.Of[model.Cinema](database.Ctx)
	if err != nil {
		return failure(c, err)
	}
	cinema, err := set.Find(c.UserContext(), inputId(c))
	if err != nil {
		return failure(c, err)
	}
	return renderForm(c, cinema, nil, nil)
}

func EditCinema(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := inputId(c)
	input := c.Locals("input").(*model.CinemaInput)
	if input.ID != id {
		return utils.NotFound(c)
	}

	set, err := database.Of[model.Cinema](database.Ctx)
	if err != nil {
		return failure(c, err)
	}

	cinema, errs, err := validate.Cinema(ctx, *input, validate.Edit)
	if err != nil {
		return failure(c, err)
	}
	if len(errs) > 0 {
		return renderForm(c, input, errs, nil)
	}

	if cinema.Slug, err = database.GenerateUniqueSlug[model.Cinema](set.DB(ctx), cinema.Name, id); err != nil {
		return failure(c, err)
	}
	if err := set.Update(ctx, &cinema); err != nil {
		return failure(c, err)
	}

	helper.InvalidateOptions(ctx, helper.CinemaOptionsKey)
	event.Emit("cinema", constants.EVENT_UPDATED, cinema.ID, helper.Now())
	return c.Redirect(cinemaListPath, fiber.StatusFound)
}

func DeleteCinema(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := inputId(c)

	set, err := database.Of[model.Cinema](database.Ctx)
	if err != nil {
		return failure(c, err)
	}
	removed, err := set.Remove(ctx, id)
	if err != nil {
		return failure(c, err)
	}

	if removed {
		helper.InvalidateOptions(ctx, helper.CinemaOptionsKey)
		event.Emit("cinema", constants.EVENT_DELETED, id, helper.Now())
	}
	return c.Redirect(cinemaListPath, fiber.StatusFound)
}
