// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user account in the FundFlow system.
type User struct {
	ID                 uuid.UUID
	Email              string
	Name               string
	PasswordHash       string
	EmailNotifications bool
	GoalAlerts         bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser creates a new User with notifications enabled by default.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:                 uuid.New(),
		Email:              email,
		Name:               name,
		PasswordHash:       passwordHash,
		EmailNotifications: true,
		GoalAlerts:         true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
