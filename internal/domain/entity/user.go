// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// User represents a registered user of the finance ledger.
// Users are created once at registration and never updated or deleted.
type User struct {
	ID           uint
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser creates a new User entity. The ID is assigned by the store.
func NewUser(username, passwordHash string) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
