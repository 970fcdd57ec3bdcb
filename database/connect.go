package database

import (
	"fmt"
	"strconv"

	"oneclickticket/config"
	"oneclickticket/model"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Ctx is the data access context the handlers read through.
var Ctx *Context

func ConnectDB() {
	var err error
	p := config.ConfigDefault("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	log.Info("Connection Opened to Database")
	if err := Setup(db); err != nil {
		panic(fmt.Sprintf("failed to migrate database: %v", err))
	}
	log.Info("Database Migrated")

	SeedData(db)
}

// Setup migrates db and installs it as the process wide store.
func Setup(db *gorm.DB) error {
	if err := Migrate(db); err != nil {
		return err
	}
	DB = db
	Ctx = NewContext(db)
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Account{},
		&model.Cinema{},
		&model.Movie{},
		&model.Booking{},
	)
}

// ContainsExpr returns a case sensitive "column contains ?" condition for the dialect of db.
func ContainsExpr(db *gorm.DB, column string) string {
	switch db.Dialector.Name() {
	case "postgres":
		return fmt.Sprintf("strpos(%s, ?) > 0", column)
	case "mysql":
		return fmt.Sprintf("INSTR(BINARY %s, ?) > 0", column)
	default:
		return fmt.Sprintf("instr(%s, ?) > 0", column)
	}
}
