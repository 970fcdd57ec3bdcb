package validate

import (
	"context"
	"strings"

	"oneclickticket/model"

	"github.com/gofiber/fiber/v2"
)

var cinemaMessages = messages{
	"Name.required":     "Name is required.",
	"Name.max":          "Name cannot be longer than 100 characters.",
	"Location.required": "Location is required.",
	"Location.max":      "Location cannot be longer than 200 characters.",
	"NumberOfHalls":     "Number of Halls must be between 1 and 20.",
	"Website":           "Website cannot be longer than 200 characters.",
	"ContactNumber":     "Contact Number cannot be longer than 30 characters.",
}

func CinemaForm() fiber.Handler {
	return bindForm[model.CinemaInput]()
}

// Cinema checks a submitted cinema form and builds the entity from it.
func Cinema(_ context.Context, input model.CinemaInput, _ Mode) (model.Cinema, model.FieldErrors, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Location = strings.TrimSpace(input.Location)
	input.Website = strings.TrimSpace(input.Website)
	input.ContactNumber = strings.TrimSpace(input.ContactNumber)

	errs := collect(&input, cinemaMessages)

	var cinema model.Cinema
	if err := build(&cinema, &input); err != nil {
		return cinema, nil, err
	}
	return cinema, errs, nil
}
