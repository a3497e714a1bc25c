// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single account.
// It carries identity, credential and authorization state.
type User struct {
	ID           int64     // Sequential primary key used for internal references.
	UUID         uuid.UUID // Stable public identifier exposed over the API.
	Email        string    // Primary contact email, unique, usable as a login identifier.
	Username     string    // Unique display handle, usable as a login identifier.
	PasswordHash string    // Bcrypt hash of the account password. Never exposed.
	FirstName    string    // Given name.
	LastName     string    // Family name.
	IsActive     bool      // Whether the account may authenticate. Soft delete clears this.
	IsAdmin      bool      // Grants access to administrative operations.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// FullName returns the display name composed from first and last name.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// CanAccess reports whether the user may read or modify the account with
// targetID. Admins may access any account, everyone else only their own.
func (u *User) CanAccess(targetID int64) bool {
	return u.IsAdmin || u.ID == targetID
}
