package helper

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"oneclickticket/config"
	"oneclickticket/database"
	"oneclickticket/model"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
)

const (
	CinemaOptionsKey = "options:cinemas"
	MovieOptionsKey  = "options:movies"
)

type optionEntry struct {
	Id    uint   `json:"id"`
	Label string `json:"label"`
}

type optionFetcher func(ctx context.Context) ([]optionEntry, error)

// CinemaOptions lists cinemas labelled by location.
func CinemaOptions(ctx context.Context, selected uint) ([]model.SelectOption, error) {
	entries, err := loadOptions(ctx, CinemaOptionsKey, cinemaEntries)
	if err != nil {
		return nil, err
	}
	return toSelectOptions(entries, selected), nil
}

// MovieOptions lists movies labelled by director.
func MovieOptions(ctx context.Context, selected uint) ([]model.SelectOption, error) {
	entries, err := loadOptions(ctx, MovieOptionsKey, movieEntries)
	if err != nil {
		return nil, err
	}
	return toSelectOptions(entries, selected), nil
}

func GenreOptions(selected *model.GenreType) []model.SelectOption {
	genres := model.Genres()
	options := make([]model.SelectOption, 0, len(genres))
	for _, g := range genres {
		options = append(options, model.SelectOption{
			Value:    g.String(),
			Label:    g.String(),
			Selected: selected != nil && *selected == g,
		})
	}
	return options
}

func cinemaEntries(ctx context.Context) ([]optionEntry, error) {
	set, err := database.Of[model.Cinema](database.Ctx)
	if err != nil {
		return nil, err
	}
	rows, err := set.All(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]optionEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, optionEntry{Id: r.ID, Label: r.Location})
	}
	return entries, nil
}

func movieEntries(ctx context.Context) ([]optionEntry, error) {
	set, err := database.Of[model.Movie](database.Ctx)
	if err != nil {
		return nil, err
	}
	rows, err := set.All(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]optionEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, optionEntry{Id: r.ID, Label: r.Director})
	}
	return entries, nil
}

func toSelectOptions(entries []optionEntry, selected uint) []model.SelectOption {
	options := make([]model.SelectOption, 0, len(entries))
	for _, e := range entries {
		options = append(options, model.SelectOption{
			Value:    strconv.FormatUint(uint64(e.Id), 10),
			Label:    e.Label,
			Selected: selected != 0 && e.Id == selected,
		})
	}
	return options
}

func loadOptions(ctx context.Context, key string, fetch optionFetcher) ([]optionEntry, error) {
	if rdb := database.Redis; rdb != nil {
		raw, err := rdb.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var cached []optionEntry
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
			log.Errorf("option cache %s holds invalid data, refetching", key)
		case !errors.Is(err, redis.Nil):
			log.Errorf("option cache get %s: %v", key, err)
		}
	}

	entries, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	storeOptions(ctx, key, entries)
	return entries, nil
}

func storeOptions(ctx context.Context, key string, entries []optionEntry) {
	rdb := database.Redis
	if rdb == nil {
		return
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	ttl := config.ConfigDuration("OPTION_CACHE_TTL", 10*time.Minute)
	if err := rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Errorf("option cache set %s: %v", key, err)
	}
}

// InvalidateOptions drops cached option lists after a write.
func InvalidateOptions(ctx context.Context, keys ...string) {
	rdb := database.Redis
	if rdb == nil || len(keys) == 0 {
		return
	}
	if err := rdb.Del(ctx, keys...).Err(); err != nil {
		log.Errorf("option cache invalidate %v: %v", keys, err)
	}
}

// WarmOptionCache refetches both option lists and stores them.
func WarmOptionCache(ctx context.Context) error {
	for key, fetch := range map[string]optionFetcher{
		CinemaOptionsKey: cinemaEntries,
		MovieOptionsKey:  movieEntries,
	} {
		entries, err := fetch(ctx)
		if err != nil {
			return err
		}
		storeOptions(ctx, key, entries)
	}
	return nil
}
