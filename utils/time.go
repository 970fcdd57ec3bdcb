package utils

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted from html datetime-local inputs and API clients.
var formTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseFormTimeIn parses a submitted date-time. Values without a zone are read in loc.
func ParseFormTimeIn(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time")
	}
	for _, layout := range formTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format: %s", s)
}

func ParseFormTime(s string) (time.Time, error) {
	return ParseFormTimeIn(s, time.Local)
}
