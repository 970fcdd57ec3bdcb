package handler

import (
	"context"
	"fmt"
	"time"

	"oneclickticket/constants"
	"oneclickticket/database"
	"oneclickticket/event"
	"oneclickticket/helper"
	"oneclickticket/model"
	"oneclickticket/utils"
	"oneclickticket/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const bookingListPath = "/Bookings"

func bookingOptions(ctx context.Context, cinemaId, movieId uint) (map[string][]model.SelectOption, error) {
	cinemas, err := helper.CinemaOptions(ctx, cinemaId)
	if err != nil {
		return nil, err
	}
	movies, err := helper.MovieOptions(ctx, movieId)
	if err != nil {
		return nil, err
	}
	return map[string][]model.SelectOption{
		"CinemaId": cinemas,
		"MovieId":  movies,
	}, nil
}

func GetBookings(c *fiber.Ctx) error {
	set, err := database.Of[model.Booking](database.Ctx)
	if err != nil {
		return failure(c, err)
	}
	bookings, err := set.All(c.UserContext(), "Cinema", "Movie")
	if err != nil {
		return failure(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, bookings)
}

// GetBookingById serves both the detail and the delete confirmation page.
func GetBookingById(c *fiber.Ctx) error {
	set, err := database.Of[model.Booking](database.Ctx)
	if err != nil {
		return failure(c, err)
	}
	booking, err := set.Find(c.UserContext(), inputId(c), "Cinema", "Movie")
	if err != nil {
		return failure(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func CreateBookingForm(c *fiber.Ctx) error {
	options, err := bookingOptions(c.UserContext(), 0, 0)
	if err != nil {
		return failure(c, err)
	}
	return renderForm(c, model.BookingInput{}, nil, options)
}

func CreateBooking(c *fiber.Ctx) error {
	ctx := c.UserContext()
	input := c.Locals("input").(*model.BookingInput)

	set, err := database.Of[model.Booking](database.Ctx)
	if err != nil {
		return failure(c, err)
	}

	booking, errs, err := validate.Booking(ctx, *input, validate.Create)
	if err != nil {
		return failure(c, err)
	}
	if len(errs) > 0 {
		options, err := bookingOptions(ctx, input.CinemaId, input.MovieId)
		if err != nil {
			return failure(c, err)
		}
		return renderForm(c, input, errs, options)
	}

	booking.ID = 0
	booking.Version = 0
	booking.Reference = "BKG-" + uuid.NewString()
	if err := set.Add(ctx, &booking); err != nil {
		return failure(c, err)
	}

	event.Emit("booking", constants.EVENT_CREATED, booking.ID, helper.Now())
	return c.Redirect(bookingListPath, fiber.StatusFound)
}

func EditBookingForm(c *fiber.Ctx) error {
	ctx := c.UserContext()
	set, err := database.Of[model.Booking](database.Ctx)
	if err != nil {
		return failure(c, err)
	}
	booking, err := set.Find(ctx, inputId(c))
	if err != nil {
		return failure(c, err)
	}
	options, err := bookingOptions(ctx, booking.CinemaId, booking.MovieId)
	if err != nil {
		return failure(c, err)
	}
	return renderForm(c, booking, nil, options)
}

func EditBooking(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := inputId(c)
	input := c.Locals("input").(*model.BookingInput)
	if input.ID != id {
		return utils.NotFound(c)
	}

	set, err := database.Of[model.Booking](database.Ctx)
	if err != nil {
		return failure(c, err)
	}

	booking, errs, err := validate.Booking(ctx, *input, validate.Edit)
	if err != nil {
		return failure(c, err)
	}
	if len(errs) > 0 {
		options, err := bookingOptions(ctx, input.CinemaId, input.MovieId)
		if err != nil {
			return failure(c, err)
		}
		return renderForm(c, input, errs, options)
	}

	if err := set.Update(ctx, &booking, "reference"); err != nil {
		return failure(c, err)
	}

	event.Emit("booking", constants.EVENT_UPDATED, booking.ID, helper.Now())
	return c.Redirect(bookingListPath, fiber.StatusFound)
}

func DeleteBooking(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := inputId(c)

	set, err := database.Of[model.Booking](database.Ctx)
	if err != nil {
		return failure(c, err)
	}
	removed, err := set.Remove(ctx, id)
	if err != nil {
		return failure(c, err)
	}

	if removed {
		event.Emit("booking", constants.EVENT_DELETED, id, helper.Now())
	}
	return c.Redirect(bookingListPath, fiber.StatusFound)
}

// TicketPayload is the text encoded in a booking's QR code.
func TicketPayload(b *model.Booking) string {
	return fmt.Sprintf("%s|cinema=%d|movie=%d|time=%s|seats=%d",
		b.Reference, b.CinemaId, b.MovieId, b.BookingTime.UTC().Format(time.RFC3339), b.NumberOfSeats)
}

func GetBookingTicket(c *fiber.Ctx) error {
	set, err := database.Of[model.Booking](database.Ctx)
	if err != nil {
		return failure(c, err)
	}
	booking, err := set.Find(c.UserContext(), inputId(c))
	if err != nil {
		return failure(c, err)
	}

	png, err := utils.QRCodePNG(TicketPayload(booking), c.QueryInt("size", utils.DefaultQRSize))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.QR_FAILED, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(fiber.StatusOK).Send(png)
}
