package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"oneclickticket/utils"
)

type GenreType int

const (
	Action GenreType = iota
	Comedy
	Drama
	Fantasy
	Horror
	Mystery
	Romance
	Thriller
)

var genreNames = [...]string{"Action", "Comedy", "Drama", "Fantasy", "Horror", "Mystery", "Romance", "Thriller"}

// Genres lists every genre in declaration order.
func Genres() []GenreType {
	out := make([]GenreType, len(genreNames))
	for i := range genreNames {
		out[i] = GenreType(i)
	}
	return out
}

func (g GenreType) Valid() bool {
	return g >= 0 && int(g) < len(genreNames)
}

func (g GenreType) String() string {
	if !g.Valid() {
		return strconv.Itoa(int(g))
	}
	return genreNames[g]
}

// ParseGenre accepts a genre name (any case) or its ordinal.
func ParseGenre(s string) (GenreType, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		g := GenreType(n)
		return g, g.Valid()
	}
	for i, name := range genreNames {
		if strings.EqualFold(name, s) {
			return GenreType(i), true
		}
	}
	return 0, false
}

func (g GenreType) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

func (g *GenreType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		var n int
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("invalid genre: %s", data)
		}
		raw = strconv.Itoa(n)
	}
	parsed, ok := ParseGenre(raw)
	if !ok {
		return fmt.Errorf("invalid genre: %s", raw)
	}
	*g = parsed
	return nil
}

type Movie struct {
	DTO
	Title       string           `gorm:"size:100;not null;index" json:"title"`
	Duration    int              `gorm:"not null" json:"duration"` // minutes
	Genre       GenreType        `gorm:"not null;index" json:"genre"`
	Director    string           `gorm:"size:100;not null" json:"director"`
	ReleaseDate utils.CustomDate `gorm:"type:date;not null" json:"releaseDate"`
	Slug        string           `gorm:"size:120;uniqueIndex" json:"slug"`
	Bookings    []Booking        `gorm:"foreignKey:MovieId" json:"bookings,omitempty"`
}
type Movies []Movie

// MovieInput is the form body of the movie create and edit pages.
type MovieInput struct {
	ID          uint   `form:"ID" json:"id"`
	Version     uint   `form:"Version" json:"version"`
	Title       string `form:"Title" json:"title" validate:"required,max=100"`
	Duration    int    `form:"Duration" json:"duration" validate:"min=30,max=240"`
	GenreName   string `form:"Genre" json:"genre" validate:"required,genre"`
	Director    string `form:"Director" json:"director" validate:"required,max=100"`
	ReleaseText string `form:"ReleaseDate" json:"releaseDate" validate:"required"`
}

type FilterMovie struct {
	GenreFilter string `query:"genreFilter"`
	SearchTerm  string `query:"searchTerm"`
	SortOrder   string `query:"sortOrder"`
}
