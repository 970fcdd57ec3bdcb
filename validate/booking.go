package validate

import (
	"context"
	"time"

	"oneclickticket/constants"
	"oneclickticket/database"
	"oneclickticket/helper"
	"oneclickticket/model"
	"oneclickticket/utils"

	"github.com/gofiber/fiber/v2"
)

// The create and edit pages have always worded their errors differently.
var bookingMessages = map[Mode]messages{
	Create: {
		"CinemaId":             "A valid cinema selection is required.",
		"CinemaId.reference":   "The selected cinema does not exist.",
		"MovieId":              "A valid movie selection is required.",
		"MovieId.reference":    "The selected movie does not exist.",
		"BookingTime.required": "Booking Time is required.",
		"BookingTime.format":   "Booking Time is not a valid date and time.",
		"BookingTime.past":     "The booking time cannot be in the past.",
		"NumberOfSeats.min":    "You must book at least one seat.",
		"NumberOfSeats.max":    "You cannot book more than 10 seats.",
	},
	Edit: {
		"CinemaId":             "Valid Cinema is required.",
		"CinemaId.reference":   "Selected Cinema does not exist.",
		"MovieId":              "Valid Movie is required.",
		"MovieId.reference":    "Selected Movie does not exist.",
		"BookingTime.required": "Booking Time is required.",
		"BookingTime.format":   "Booking Time is not a valid date and time.",
		"BookingTime.past":     "Booking time cannot be in the past.",
		"NumberOfSeats.min":    "At least one seat must be booked.",
		"NumberOfSeats.max":    "No more than 10 seats can be booked.",
	},
}

func BookingForm() fiber.Handler {
	return bindForm[model.BookingInput]()
}

// InPast reports whether t is too early for mode. Create needs a strictly future
// time while edit still accepts a time equal to now.
func InPast(mode Mode, t, now time.Time) bool {
	if mode == Edit {
		return t.Before(now)
	}
	return !t.After(now)
}

// Booking checks a submitted booking form, including that the chosen cinema and
// movie exist, and builds the entity from it. The error is non-nil only when a
// lookup could not run.
func Booking(ctx context.Context, input model.BookingInput, mode Mode) (model.Booking, model.FieldErrors, error) {
	msgs := bookingMessages[mode]
	errs := collect(&input, msgs)

	var booking model.Booking
	if err := build(&booking, &input); err != nil {
		return booking, nil, err
	}

	if !errs.Has("BookingTime") {
		now := helper.Now()
		t, err := utils.ParseFormTimeIn(input.TimeText, now.Location())
		switch {
		case err != nil:
			errs = append(errs, model.FieldError{Field: "BookingTime", Code: constants.CODE_INVALID, Message: msgs.lookup("BookingTime", "format")})
		case InPast(mode, t, now):
			errs = append(errs, model.FieldError{Field: "BookingTime", Code: constants.CODE_PAST, Message: msgs.lookup("BookingTime", "past")})
		default:
			booking.BookingTime = t
		}
	}

	if !errs.Has("CinemaId") {
		ok, err := referenceExists[model.Cinema](ctx, input.CinemaId)
		if err != nil {
			return booking, errs, err
		}
		if !ok {
			errs = append(errs, model.FieldError{Field: "CinemaId", Code: constants.CODE_REFERENCE_NOT_FOUND, Message: msgs.lookup("CinemaId", "reference")})
		}
	}
	if !errs.Has("MovieId") {
		ok, err := referenceExists[model.Movie](ctx, input.MovieId)
		if err != nil {
			return booking, errs, err
		}
		if !ok {
			errs = append(errs, model.FieldError{Field: "MovieId", Code: constants.CODE_REFERENCE_NOT_FOUND, Message: msgs.lookup("MovieId", "reference")})
		}
	}

	return booking, errs, nil
}

func referenceExists[T any](ctx context.Context, id uint) (bool, error) {
	set, err := database.Of[T](database.Ctx)
	if err != nil {
		return false, err
	}
	return set.Exists(ctx, id)
}
