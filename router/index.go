package router

import (
	"strings"
	"time"

	"oneclickticket/config"
	"oneclickticket/constants"
	"oneclickticket/handler"
	"oneclickticket/middleware"
	"oneclickticket/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// NewApp builds the fiber app with the shared middleware stack and every route.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "oneclickticket",
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if origins := config.Config("CORS_ORIGINS"); origins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     strings.TrimSpace(origins),
			AllowMethods:     "GET,POST,OPTIONS",
			AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
			AllowCredentials: true,
			MaxAge:           600,
		}))
	}

	SetupRoutes(app)
	return app
}

func antiForgery() fiber.Handler {
	if !config.ConfigBool("CSRF_ENABLED", true) {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return csrf.New(csrf.Config{
		KeyLookup:      "form:_csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		Expiration:     time.Hour,
		KeyGenerator:   uuid.NewString,
		ContextKey:     constants.CSRF_CONTEXT_KEY,
	})
}

func SetupRoutes(app *fiber.App) {
	policy := middleware.NewPolicy(config.ConfigBool("REQUIRE_AUTH_FOR_WRITES", false))
	forms := antiForgery()

	api := app.Group("/api", logger.New())

	auth := api.Group("/auth", limiter.New(limiter.Config{Max: 20, Expiration: time.Minute}))
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", middleware.Protected(), handler.Me)
	auth.Get("/accounts", middleware.Authorize(policy, constants.OP_ACCOUNT_LIST), handler.GetAccounts)

	bookings := app.Group("/Bookings", logger.New(), forms)
	bookings.Get("/", middleware.Authorize(policy, constants.OP_BOOKING_LIST), handler.GetBookings)
	bookings.Get("/Details/:id", middleware.Authorize(policy, constants.OP_BOOKING_DETAIL), validate.GetById("id"), handler.GetBookingById)
	bookings.Get("/Create", middleware.Authorize(policy, constants.OP_BOOKING_CREATE), handler.CreateBookingForm)
	bookings.Post("/Create", middleware.Authorize(policy, constants.OP_BOOKING_CREATE), validate.BookingForm(), handler.CreateBooking)
	bookings.Get("/Edit/:id", middleware.Authorize(policy, constants.OP_BOOKING_EDIT), validate.GetById("id"), handler.EditBookingForm)
	bookings.Post("/Edit/:id", middleware.Authorize(policy, constants.OP_BOOKING_EDIT), validate.GetById("id"), validate.BookingForm(), handler.EditBooking)
	bookings.Get("/Delete/:id", middleware.Authorize(policy, constants.OP_BOOKING_DELETE), validate.GetById("id"), handler.GetBookingById)
	bookings.Post("/Delete/:id", middleware.Authorize(policy, constants.OP_BOOKING_DELETE), validate.GetById("id"), handler.DeleteBooking)
	bookings.Get("/Ticket/:id", middleware.Authorize(policy, constants.OP_BOOKING_TICKET), validate.GetById("id"), handler.GetBookingTicket)

	cinemas := app.Group("/Cinemas", logger.New(), forms)
	cinemas.Get("/", middleware.Authorize(policy, constants.OP_CINEMA_LIST), handler.GetCinemas)
	cinemas.Get("/Details/:id", middleware.Authorize(policy, constants.OP_CINEMA_DETAIL), validate.GetById("id"), handler.GetCinemaById)
	cinemas.Get("/Create", middleware.Authorize(policy, constants.OP_CINEMA_CREATE), handler.CreateCinemaForm)
	cinemas.Post("/Create", middleware.Authorize(policy, constants.OP_CINEMA_CREATE), validate.CinemaForm(), handler.CreateCinema)
	cinemas.Get("/Edit/:id", middleware.Authorize(policy, constants.OP_CINEMA_EDIT), validate.GetById("id"), handler.EditCinemaForm)
	cinemas.Post("/Edit/:id", middleware.Authorize(policy, constants.OP_CINEMA_EDIT), validate.GetById("id"), validate.CinemaForm(), handler.EditCinema)
	cinemas.Get("/Delete/:id", middleware.Authorize(policy, constants.OP_CINEMA_DELETE), validate.GetById("id"), handler.GetCinemaById)
	cinemas.Post("/Delete/:id", middleware.Authorize(policy, constants.OP_CINEMA_DELETE), validate.GetById("id"), handler.DeleteCinema)

	movies := app.Group("/Movies", logger.New(), forms)
	movies.Get("/", middleware.Authorize(policy, constants.OP_MOVIE_LIST), handler.GetMovies)
	movies.Get("/Details/:id", middleware.Authorize(policy, constants.OP_MOVIE_DETAIL), validate.GetById("id"), handler.GetMovieById)
	movies.Get("/Create", middleware.Authorize(policy, constants.OP_MOVIE_CREATE), handler.CreateMovieForm)
	movies.Post("/Create", middleware.Authorize(policy, constants.OP_MOVIE_CREATE), validate.MovieForm(), handler.CreateMovie)
	movies.Get("/Edit/:id", middleware.Authorize(policy, constants.OP_MOVIE_EDIT), validate.GetById("id"), handler.EditMovieForm)
	movies.Post("/Edit/:id", middleware.Authorize(policy, constants.OP_MOVIE_EDIT), validate.GetById("id"), validate.MovieForm(), handler.EditMovie)
	movies.Get("/Delete/:id", middleware.Authorize(policy, constants.OP_MOVIE_DELETE), validate.GetById("id"), handler.GetMovieById)
	movies.Post("/Delete/:id", middleware.Authorize(policy, constants.OP_MOVIE_DELETE), validate.GetById("id"), handler.DeleteMovie)

	changes := app.Group("/Changes", middleware.Authorize(policy, constants.OP_CHANGE_FEED))
	changes.Get("/:entity", handler.ChangeFeedUpgrade, websocket.New(handler.ChangeFeed))
}
