package repository

import (
	"errors"
	"os"
	"time"
)

var (
	// ErrNoRows is returned by updates that match no row in the tenant.
	ErrNoRows = errors.New("repository: no rows affected")
	// ErrDuplicateKey is returned when an insert collides with an existing id.
	ErrDuplicateKey = errors.New("repository: duplicate key")
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
