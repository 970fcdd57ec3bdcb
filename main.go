package main

import (
	"os"
	"os/signal"
	"syscall"

	"oneclickticket/config"
	"oneclickticket/database"
	"oneclickticket/event"
	"oneclickticket/helper"
	"oneclickticket/router"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	database.ConnectDB()
	database.ConnectRedis()

	closeEvents := event.Connect(config.Config("RABBITMQ_URL"))
	defer closeEvents()

	helper.StartOptionCacheScheduler()
	defer helper.StopOptionCacheScheduler()

	app := router.NewApp()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		_ = app.Shutdown()
	}()

	if err := app.Listen(":" + config.ConfigDefault("APP_PORT", "8002")); err != nil {
		log.Fatal(err)
	}
}
