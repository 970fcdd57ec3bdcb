package handler

import (
	"strings"

	"oneclickticket/constants"
	"oneclickticket/database"
	"oneclickticket/event"
	"oneclickticket/helper"
	"oneclickticket/model"
	"oneclickticket/utils"
	"oneclickticket/validate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const movieListPath = "/Movies"

type movieStats struct {
	Count   int64
	Average *float64
}

// GetMovies lists movies filtered by genre and a case sensitive title substring,
// ordered by release date, with the count and mean duration of the filtered set.
func GetMovies(c *fiber.Ctx) error {
	filterInput := new(model.FilterMovie)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	set, err := database.Of[model.Movie](database.Ctx)
	if err != nil {
		return failure(c, err)
	}
	ctx := c.UserContext()

	result := model.MovieIndex{SearchTerm: filterInput.SearchTerm, SortOrder: "asc"}

	query := set.Query(ctx)
	if genre, ok := model.ParseGenre(filterInput.GenreFilter); ok {
		query = query.Where("genre = ?", genre)
		result.GenreFilter = &genre
	}
	if filterInput.SearchTerm != "" {
		query = query.Where(database.ContainsExpr(query, "title"), filterInput.SearchTerm)
	}
	query = query.Session(&gorm.Session{})

	var stats movieStats
	if err := query.Select("COUNT(*) AS count, AVG(duration) AS average").Scan(&stats).Error; err != nil {
		return failure(c, err)
	}
	result.Count = stats.Count
	if stats.Count > 0 {
		result.AverageDuration = stats.Average
	}

	order := "release_date ASC, id ASC"
	if strings.EqualFold(strings.TrimSpace(filterInput.SortOrder), "desc") {
		order = "release_date DESC, id ASC"
		result.SortOrder = "desc"
	}
	movies := []model.Movie{}
	if err := query.Order(order).Find(&movies).Error; err != nil {
		return failure(c, err)
	}
	result.Movies = movies
	result.Genres = helper.GenreOptions(result.GenreFilter)

	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

// GetMovieById serves both the detail and the delete confirmation page.
func GetMovieById(c *fiber.Ctx) error {
	set, err := database.Of[model.Movie](database.Ctx)
	if err != nil {
		return failure(c, err)
	}
	movie, err := set.Find(c.UserContext(), inputId(c))
	if err != nil {
		return failure(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func movieOptions(selected *model.GenreType) map[string][]model.SelectOption {
	return map[string][]model.SelectOption{"Genre": helper.GenreOptions(selected)}
}

func CreateMovieForm(c *fiber.Ctx) error {
	return renderForm(c, model.MovieInput{}, nil, movieOptions(nil))
}

func submittedGenre(input *model.MovieInput) *model.GenreType {
	if g, ok := model.ParseGenre(input.GenreName); ok {
		return &g
	}
	return nil
}

func CreateMovie(c *fiber.Ctx) error {
	ctx := c.UserContext()
	input := c.Locals("input").(*model.MovieInput)

	set, err := database.Of[model.Movie](database.Ctx)
	if err != nil {
		return failure(c, err)
	}

	movie, errs, err := validate.Movie(ctx, *input, validate.Create)
	if err != nil {
		return failure(c, err)
	}
	if len(errs) > 0 {
		return renderForm(c, input, errs, movieOptions(submittedGenre(input)))
	}

	movie.ID = 0
	movie.Version = 0
	if movie.Slug, err = database.GenerateUniqueSlug[model.Movie](set.DB(ctx), movie.Title, 0); err != nil {
		return failure(c, err)
	}
	if err := set.Add(ctx, &movie); err != nil {
		return failure(c, err)
	}

	helper.InvalidateOptions(ctx, helper.MovieOptionsKey)
	event.Emit("movie", constants.EVENT_CREATED, movie.ID, helper.Now())
	return c.Redirect(movieListPath, fiber.StatusFound)
}

func EditMovieForm(c *fiber.Ctx) error {
	set, err := database.Of[model.Movie](database.Ctx)
	if err != nil {
		return failure(c, err)
	}
	movie, err := set.Find(c.UserContext(), inputId(c))
	if err != nil {
		return failure(c, err)
	}
	return renderForm(c, movie, nil, movieOptions(&movie.Genre))
}

func EditMovie(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := inputId(c)
	input := c.Locals("input").(*model.MovieInput)
	if input.ID != id {
		return utils.NotFound(c)
	}

	set, err := database.Of[model.Movie](database.Ctx)
	if err != nil {
		return failure(c, err)
	}

	movie, errs, err := validate.Movie(ctx, *input, validate.Edit)
	if err != nil {
		return failure(c, err)
	}
	if len(errs) > 0 {
		return renderForm(c, input, errs, movieOptions(submittedGenre(input)))
	}

	if movie.Slug, err = database.GenerateUniqueSlug[model.Movie](set.DB(ctx), movie.Title, id); err != nil {
		return failure(c, err)
	}
	if err := set.Update(ctx, &movie); err != nil {
		return failure(c, err)
	}

	helper.InvalidateOptions(ctx, helper.MovieOptionsKey)
	event.Emit("movie", constants.EVENT_UPDATED, movie.ID, helper.Now())
	return c.Redirect(movieListPath, fiber.StatusFound)
}

func DeleteMovie(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := inputId(c)

	set, err := database.Of[model.Movie](database.Ctx)
	if err != nil {
		return failure(c, err)
	}
	removed, err := set.Remove(ctx, id)
	if err != nil {
		return failure(c, err)
	}

	if removed {
		helper.InvalidateOptions(ctx, helper.MovieOptionsKey)
		event.Emit("movie", constants.EVENT_DELETED, id, helper.Now())
	}
	return c.Redirect(movieListPath, fiber.StatusFound)
}
