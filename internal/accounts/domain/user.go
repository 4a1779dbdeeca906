package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           string
	Name         string
	Email        string // trimmed, lower-cased
	PasswordHash string // argon2id PHC string, or legacy bcrypt
	Role         Role
	Favorites    []string // insertion order, no duplicates
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdate is a partial update. Nil fields are left alone.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// IsEmpty reports whether the update would change nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.PasswordHash == nil
}

// NormalizeEmail is the canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
