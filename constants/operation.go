package constants

// Operation names used by the authorization policy table.
const (
	OP_BOOKING_LIST   = "Bookings.Index"
	OP_BOOKING_DETAIL = "Bookings.Details"
	OP_BOOKING_CREATE = "Bookings.Create"
	OP_BOOKING_EDIT   = "Bookings.Edit"
	OP_BOOKING_DELETE = "Bookings.Delete"
	OP_BOOKING_TICKET = "Bookings.Ticket"

	OP_CINEMA_LIST   = "Cinemas.Index"
	OP_CINEMA_DETAIL = "Cinemas.Details"
	OP_CINEMA_CREATE = "Cinemas.Create"
	OP_CINEMA_EDIT   = "Cinemas.Edit"
	OP_CINEMA_DELETE = "Cinemas.Delete"

	OP_MOVIE_LIST   = "Movies.Index"
	OP_MOVIE_DETAIL = "Movies.Details"
	OP_MOVIE_CREATE = "Movies.Create"
	OP_MOVIE_EDIT   = "Movies.Edit"
	OP_MOVIE_DELETE = "Movies.Delete"
)

// Routing keys published on the events exchange.
const (
	EVENT_CREATED = "created"
	EVENT_UPDATED = "updated"
	EVENT_DELETED = "deleted"
)

const (
	OP_ACCOUNT_LIST = "Accounts.Index"
	OP_CHANGE_FEED  = "Changes.Feed"
)

// Locals key the csrf middleware stores the token under.
const CSRF_CONTEXT_KEY = "csrf"
