package database

import (
	"time"

	"oneclickticket/config"
	"oneclickticket/constants"
	"oneclickticket/model"
	"oneclickticket/utils"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseDate(dateStr string) utils.CustomDate {
	t, _ := time.Parse(utils.DateLayout, dateStr)
	return utils.CustomDate{Time: t}
}

func SeedData(db *gorm.DB) {
	if username, password := config.Config("ADMIN_USERNAME"), config.Config("ADMIN_PASSWORD"); username != "" && password != "" {
		bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
		if err != nil {
			log.Errorf("failed to hash seed password: %v", err)
		} else {
			account := model.Account{Username: username, Password: string(bytes), Role: constants.ROLE_ADMIN}
			if err := db.Where(model.Account{Username: username}).FirstOrCreate(&account).Error; err != nil {
				log.Errorf("failed to seed account %s: %v", username, err)
			}
		}
	}

	cinemas := []model.Cinema{
		{Name: "Grand", Location: "Main St", NumberOfHalls: 5, Website: "https://grand.example.com", ContactNumber: "555-0100"},
		{Name: "Riverside", Location: "River Rd", NumberOfHalls: 3},
	}
	for _, cinema := range cinemas {
		s, err := GenerateUniqueSlug[model.Cinema](db, cinema.Name, 0)
		if err != nil {
			log.Errorf("failed to seed cinema %s: %v", cinema.Name, err)
			continue
		}
		cinema.Slug = s
		if err := db.Where(model.Cinema{Name: cinema.Name}).FirstOrCreate(&cinema).Error; err != nil {
			log.Errorf("failed to seed cinema %s: %v", cinema.Name, err)
		}
	}

	movies := []model.Movie{
		{Title: "The Long Night", Duration: 128, Genre: model.Thriller, Director: "A. Rivera", ReleaseDate: parseDate("2023-10-13")},
		{Title: "Laugh Track", Duration: 95, Genre: model.Comedy, Director: "J. Okafor", ReleaseDate: parseDate("2024-03-01")},
		{Title: "Ember Crown", Duration: 152, Genre: model.Fantasy, Director: "M. Lindqvist", ReleaseDate: parseDate("2022-12-09")},
	}
	for _, movie := range movies {
		s, err := GenerateUniqueSlug[model.Movie](db, movie.Title, 0)
		if err != nil {
			log.Errorf("failed to seed movie %s: %v", movie.Title, err)
			continue
		}
		movie.Slug = s
		if err := db.Where(model.Movie{Title: movie.Title}).FirstOrCreate(&movie).Error; err != nil {
			log.Errorf("failed to seed movie %s: %v", movie.Title, err)
		}
	}
}
