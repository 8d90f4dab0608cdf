package db

import (
	"time"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
}

type Session struct {
	TokenHash string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

type Client struct {
	ID   string
	Name string
}

type Project struct {
	ID          string
	ClientID    *string
	Name        string
	Description *string
	StartDate   *time.Time
	Deadline    *time.Time
}

type Team struct {
	ID          string
	Name        string
	Description *string
}

type TeamMember struct {
	TeamID string
	UserID string
}

type Task struct {
	ID          string
	ProjectID   string
	Name        string
	Description *string
}

type TimeLog struct {
	ID        string
	TaskID    string
	UserID    string
	StartTime time.Time
	EndTime   time.Time
}
