package database

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueSlug slugifies text and suffixes -1, -2, ... until no other row of T uses it.
// excludeId skips the row being edited.
func GenerateUniqueSlug[T any](tx *gorm.DB, text string, excludeId uint) (string, error) {
	base := slug.Make(text)
	if base == "" {
		base = "item"
	}
	result := base
	i := 1

	for {
		var count int64
		q := tx.Model(new(T)).Where("slug = ?", result)
		if excludeId > 0 {
			q = q.Where("id <> ?", excludeId)
		}
		if err := q.Count(&count).Error; err != nil {
			return "", fmt.Errorf("check slug %q: %w", result, err)
		}

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result, nil
}
