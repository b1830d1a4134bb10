// Package entities contains core business entities.
package entities

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain representation of a system user.
// Users are never mutated after creation in this core.
type User struct {
	Entity
	Name      string
	Email     string
	IsManager bool
}

// NewUser constructs a user.
func NewUser(id uuid.UUID, name, email string, isManager bool, now time.Time) *User {
	return &User{
		Entity:    NewEntity(id, now),
		Name:      name,
		Email:     email,
		IsManager: isManager,
	}
}

// Equal reports identity equality with nil-safe semantics.
func (u *User) Equal(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.sameIdentity(&other.Entity)
}
