package validate

import (
	"errors"
	"strings"
	"testing"
	"time"

	"oneclickticket/constants"
	"oneclickticket/database"
	"oneclickticket/model"
	"oneclickticket/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInPast(t *testing.T) {
	now := testutil.Now

	tests := []struct {
		name string
		mode Mode
		at   time.Time
		want bool
	}{
		{name: "create now", mode: Create, at: now, want: true},
		{name: "create earlier", mode: Create, at: now.Add(-time.Second), want: true},
		{name: "create later", mode: Create, at: now.Add(time.Second), want: false},
		{name: "edit now", mode: Edit, at: now, want: false},
		{name: "edit earlier", mode: Edit, at: now.Add(-time.Second), want: true},
		{name: "edit later", mode: Edit, at: now.Add(time.Second), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InPast(tt.mode, tt.at, now))
		})
	}
}

func TestCinema(t *testing.T) {
	tests := []struct {
		name  string
		input model.CinemaInput
		codes map[string]string
	}{
		{name: "valid", input: model.CinemaInput{Name: " Grand ", Location: "Main St", NumberOfHalls: 5}},
		{name: "blank", input: model.CinemaInput{Name: "   ", Location: "", NumberOfHalls: 1}, codes: map[string]string{"Name": constants.CODE_REQUIRED, "Location": constants.CODE_REQUIRED}},
		{name: "long name", input: model.CinemaInput{Name: strings.Repeat("x", 101), Location: "Main St", NumberOfHalls: 1}, codes: map[string]string{"Name": constants.CODE_LENGTH}},
		{name: "halls", input: model.CinemaInput{Name: "Grand", Location: "Main St", NumberOfHalls: 21}, codes: map[string]string{"NumberOfHalls": constants.CODE_RANGE}},
		{name: "contact", input: model.CinemaInput{Name: "Grand", Location: "Main St", NumberOfHalls: 2, ContactNumber: strings.Repeat("1", 31)}, codes: map[string]string{"ContactNumber": constants.CODE_LENGTH}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cinema, errs, err := Cinema(t.Context(), tt.input, Create)
			require.NoError(t, err)
			require.Len(t, errs, len(tt.codes))
			for field, code := range tt.codes {
				require.True(t, errs.Has(field), field)
				assert.Equal(t, code, errs.Get(field).Code)
			}
			if len(tt.codes) == 0 {
				assert.Equal(t, "Grand", cinema.Name)
				assert.Equal(t, 5, cinema.NumberOfHalls)
			}
		})
	}
}

func TestMovie(t *testing.T) {
	testutil.Setup(t)

	valid := model.MovieInput{Title: "Ember Crown", Duration: 152, GenreName: "2", Director: "M. Lindqvist", ReleaseText: "2026-03-14"}
	movie, errs, err := Movie(t.Context(), valid, Create)
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, model.Drama, movie.Genre)
	assert.Equal(t, "2026-03-14", movie.ReleaseDate.String())
	assert.Equal(t, 152, movie.Duration)

	tests := []struct {
		name    string
		change  func(*model.MovieInput)
		field   string
		code    string
		message string
	}{
		{name: "29 minutes", change: func(m *model.MovieInput) { m.Duration = 29 }, field: "Duration", code: constants.CODE_RANGE, message: "Duration must be between 30 and 240 minutes."},
		{name: "241 minutes", change: func(m *model.MovieInput) { m.Duration = 241 }, field: "Duration", code: constants.CODE_RANGE, message: "Duration must be between 30 and 240 minutes."},
		{name: "tomorrow", change: func(m *model.MovieInput) { m.ReleaseText = "2026-03-15" }, field: "ReleaseDate", code: constants.CODE_RANGE, message: "Release Date cannot be in the future."},
		{name: "zero date", change: func(m *model.MovieInput) { m.ReleaseText = "0001-01-01" }, field: "ReleaseDate", code: constants.CODE_INVALID, message: "Invalid Release Date."},
		{name: "no genre", change: func(m *model.MovieInput) { m.GenreName = "" }, field: "Genre", code: constants.CODE_REQUIRED, message: "Genre is required."},
		{name: "ordinal out of range", change: func(m *model.MovieInput) { m.GenreName = "9" }, field: "Genre", code: constants.CODE_INVALID, message: "Genre is not a known genre."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.change(&input)
			_, errs, err := Movie(t.Context(), input, Edit)
			require.NoError(t, err)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.code, errs[0].Code)
			assert.Equal(t, tt.message, errs[0].Message)
		})
	}

	for _, d := range []int{30, 240} {
		input := valid
		input.Duration = d
		_, errs, err := Movie(t.Context(), input, Create)
		assert.NoError(t, err)
		assert.Empty(t, errs, d)
	}
}

func TestBooking(t *testing.T) {
	testutil.Setup(t)
	cinema := testutil.SeedCinema(t, "Grand", "Main St", 5)
	movie := testutil.SeedMovie(t, "Laugh Track", model.Comedy, 95, "J. Okafor", "2024-03-01")
	later := testutil.Now.Add(time.Hour).Format(time.RFC3339)

	valid := model.BookingInput{CinemaId: cinema.ID, MovieId: movie.ID, TimeText: later, NumberOfSeats: 10}
	booking, errs, err := Booking(t.Context(), valid, Create)
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.True(t, booking.BookingTime.Equal(testutil.Now.Add(time.Hour)))
	assert.Equal(t, cinema.ID, booking.CinemaId)

	tests := []struct {
		name     string
		change   func(*model.BookingInput)
		field    string
		code     string
		create   string
		edit     string
		editFine bool
	}{
		{name: "now", change: func(b *model.BookingInput) { b.TimeText = testutil.Now.Format(time.RFC3339) }, field: "BookingTime", code: constants.CODE_PAST, create: "The booking time cannot be in the past.", editFine: true},
		{name: "past", change: func(b *model.BookingInput) { b.TimeText = testutil.Now.Add(-time.Minute).Format(time.RFC3339) }, field: "BookingTime", code: constants.CODE_PAST, create: "The booking time cannot be in the past.", edit: "Booking time cannot be in the past."},
		{name: "garbage time", change: func(b *model.BookingInput) { b.TimeText = "soon" }, field: "BookingTime", code: constants.CODE_INVALID, create: "Booking Time is not a valid date and time.", edit: "Booking Time is not a valid date and time."},
		{name: "no seats", change: func(b *model.BookingInput) { b.NumberOfSeats = 0 }, field: "NumberOfSeats", code: constants.CODE_RANGE, create: "You must book at least one seat.", edit: "At least one seat must be booked."},
		{name: "eleven seats", change: func(b *model.BookingInput) { b.NumberOfSeats = 11 }, field: "NumberOfSeats", code: constants.CODE_RANGE, create: "You cannot book more than 10 seats.", edit: "No more than 10 seats can be booked."},
		{name: "no cinema", change: func(b *model.BookingInput) { b.CinemaId = 0 }, field: "CinemaId", code: constants.CODE_RANGE, create: "A valid cinema selection is required.", edit: "Valid Cinema is required."},
		{name: "unknown movie", change: func(b *model.BookingInput) { b.MovieId = 99 }, field: "MovieId", code: constants.CODE_REFERENCE_NOT_FOUND, create: "The selected movie does not exist.", edit: "Selected Movie does not exist."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.change(&input)

			_, errs, err := Booking(t.Context(), input, Create)
			require.NoError(t, err)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.code, errs[0].Code)
			assert.Equal(t, tt.create, errs[0].Message)

			_, errs, err = Booking(t.Context(), input, Edit)
			require.NoError(t, err)
			if tt.editFine {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, tt.edit, errs[0].Message)
		})
	}
}

func TestBookingNeedsSets(t *testing.T) {
	testutil.Setup(t)
	database.Ctx.Movie = nil

	input := model.BookingInput{CinemaId: 1, MovieId: 1, TimeText: testutil.Now.Add(time.Hour).Format(time.RFC3339), NumberOfSeats: 1}
	_, _, err := Booking(t.Context(), input, Create)
	assert.ErrorIs(t, err, database.ErrSetMissing)
}

func TestCopyFailureIsReturned(t *testing.T) {
	testutil.Setup(t)
	broken := errors.New("copy failed")
	prev := copyFields
	copyFields = func(any, any) error { return broken }
	t.Cleanup(func() { copyFields = prev })

	_, errs, err := Cinema(t.Context(), model.CinemaInput{Name: "Grand", Location: "Main St", NumberOfHalls: 5}, Create)
	assert.ErrorIs(t, err, broken)
	assert.Empty(t, errs)

	_, _, err = Movie(t.Context(), model.MovieInput{Title: "Ember Crown", Duration: 152, GenreName: "Drama", Director: "M. Lindqvist", ReleaseText: "2022-12-09"}, Create)
	assert.ErrorIs(t, err, broken)

	_, _, err = Booking(t.Context(), model.BookingInput{CinemaId: 1, MovieId: 1, TimeText: testutil.Now.Add(time.Hour).Format(time.RFC3339), NumberOfSeats: 1}, Create)
	assert.ErrorIs(t, err, broken)
}
