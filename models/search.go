// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// Search roles.
const (
	RoleEducator = "educator"
	RolePartner  = "partner"
)

// Search describes what kind of user a searcher is looking for. Saving a
// search is what makes a fresh account an educator or a community partner.
type Search struct {
	ID               int64    `json:"id,omitempty"`
	SearcherUserID   int64    `json:"searcher_user_id"`
	SearcherRole     string   `json:"searcher_role"`
	SearchingForRole string   `json:"searching_for_role"`
	Active           bool     `json:"active"`
	Labels           []string `json:"labels"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	Distance         *float64 `json:"distance,omitempty"`

	// SearcherUser is an embedded snapshot filled by the results endpoint.
	SearcherUser *User `json:"searcher_user,omitempty"`
}

// ItemID implements the resource item contract.
func (s Search) ItemID() int64 {
	return s.ID
}

// ResultsPath returns the client route of the search's results view.
func (s Search) ResultsPath() string {
	return "/search/" + strconv.FormatInt(s.ID, 10) + "/results"
}

// IsValidRole reports whether role is one of the two matchable roles.
func IsValidRole(role string) bool {
	return role == RoleEducator || role == RolePartner
}

// OppositeRole returns the role a searcher with role is matched with.
func OppositeRole(role string) string {
	if role == RoleEducator {
		return RolePartner
	}
	return RoleEducator
}
