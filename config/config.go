package config

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config func to get env value
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Info("no .env file found, using process environment")
		}
	})
	return os.Getenv(key)
}

func ConfigDefault(key, def string) string {
	if v := Config(key); v != "" {
		return v
	}
	return def
}

func ConfigBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(Config(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func ConfigDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(Config(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
