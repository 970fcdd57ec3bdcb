package validate

import (
	"context"
	"strings"
	"time"

	"oneclickticket/constants"
	"oneclickticket/helper"
	"oneclickticket/model"
	"oneclickticket/utils"

	"github.com/gofiber/fiber/v2"
)

var movieMessages = messages{
	"Title.required":       "Title is required.",
	"Title.max":            "Title cannot be longer than 100 characters.",
	"Duration":             "Duration must be between 30 and 240 minutes.",
	"Genre.required":       "Genre is required.",
	"Genre.genre":          "Genre is not a known genre.",
	"Director.required":    "Director is required.",
	"Director.max":         "Director cannot be longer than 100 characters.",
	"ReleaseDate.required": "Release Date is required.",
	"ReleaseDate":          "Invalid Release Date.",
	"ReleaseDate.future":   "Release Date cannot be in the future.",
}

func MovieForm() fiber.Handler {
	return bindForm[model.MovieInput]()
}

// Movie checks a submitted movie form and builds the entity from it.
func Movie(_ context.Context, input model.MovieInput, _ Mode) (model.Movie, model.FieldErrors, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Director = strings.TrimSpace(input.Director)

	errs := collect(&input, movieMessages)

	var movie model.Movie
	if err := build(&movie, &input); err != nil {
		return movie, nil, err
	}
	if genre, ok := model.ParseGenre(input.GenreName); ok {
		movie.Genre = genre
	}

	if !errs.Has("ReleaseDate") {
		date, err := utils.ParseDate(input.ReleaseText)
		today := utils.NewDate(helper.Now())
		switch {
		case err != nil || !date.After(time.Time{}):
			errs = append(errs, model.FieldError{Field: "ReleaseDate", Code: constants.CODE_INVALID, Message: movieMessages.lookup("ReleaseDate", "")})
		case date.After(today.Time):
			errs = append(errs, model.FieldError{Field: "ReleaseDate", Code: constants.CODE_RANGE, Message: movieMessages.lookup("ReleaseDate", "future")})
		default:
			movie.ReleaseDate = date
		}
	}
	return movie, errs, nil
}
