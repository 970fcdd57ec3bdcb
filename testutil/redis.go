package testutil

import (
	"testing"

	"oneclickticket/database"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis points database.Redis at an in-memory server for the length of the test.
// Call it after Setup, which restores the previous client.
func Redis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	database.Redis = client
	t.Cleanup(func() { _ = client.Close() })
	return mr
}
