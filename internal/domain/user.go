package domain

import "time"

// User is a person who can log in. Users are created out of band and are
// read-only from the HTTP API.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
}
