// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a CommunityShare account. The same type is exchanged with the REST
// API and persisted by the server store.
type User struct {
	// ID is the server-assigned identifier. Zero means "not saved yet".
	ID int64 `json:"id,omitempty"`

	// Name is the display name shown to matched users.
	Name string `json:"name"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// DateCreated and LastActive are maintained by the server.
	DateCreated time.Time `json:"date_created"`
	LastActive  time.Time `json:"last_active"`

	// EmailConfirmed is set once the user follows the confirmation link.
	EmailConfirmed bool `json:"email_confirmed"`

	// IsAdministrator grants access to every resource. Only administrators
	// may change it.
	IsAdministrator bool `json:"is_administrator"`

	// IsEducator and IsCommunityPartner are derived by the server from the
	// user's searches.
	IsEducator         bool `json:"is_educator"`
	IsCommunityPartner bool `json:"is_community_partner"`

	// InstitutionAssociations lists the institutions the user belongs to.
	InstitutionAssociations []InstitutionAssociation `json:"institution_associations"`

	// PasswordHash is the bcrypt hash of the password. Never serialised.
	PasswordHash string `json:"-"`
}

// ItemID returns the identifier used by resource clients to choose between
// create and update.
func (u User) ItemID() int64 {
	return u.ID
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Clone returns a deep copy of u, safe to edit without touching the original
// (the settings screen edits a clone of the session user).
func (u User) Clone() User {
	c := u
	if u.InstitutionAssociations != nil {
		c.InstitutionAssociations = make([]InstitutionAssociation, len(u.InstitutionAssociations))
		copy(c.InstitutionAssociations, u.InstitutionAssociations)
	}
	return c
}

// Public returns the fields of u any signed-in user may read. Email and
// account dates are visible only to u and to administrators.
func (u User) Public() User {
	p := u.Clone()
	p.Email = ""
	p.DateCreated = time.Time{}
	p.EmailConfirmed = false
	return p
}
