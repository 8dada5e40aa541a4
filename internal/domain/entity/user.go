// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the system. Every other document in the domain is
// owned by exactly one User and is only reachable through that user's identity.
type User struct {
	ID           uuid.UUID         `json:"id"`
	Email        string            `json:"email"` // Unique login identifier.
	Name         string            `json:"name"`
	PasswordHash string            `json:"-"` // bcrypt hash, never serialized.
	Preferences  map[string]string `json:"preferences"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// MergePreferences shallowly merges the given preferences into the user's
// existing map, overwriting colliding keys.
func (u *User) MergePreferences(prefs map[string]string) {
	if len(prefs) == 0 {
		return
	}
	if u.Preferences == nil {
		u.Preferences = make(map[string]string, len(prefs))
	}
	for k, v := range prefs {
		u.Preferences[k] = v
	}
}
