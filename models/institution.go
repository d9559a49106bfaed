// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// InstitutionNameMaxLength is the longest institution name the server accepts.
const InstitutionNameMaxLength = 50

// Institution is a school, company or organisation users can associate with.
type Institution struct {
	ID              int64  `json:"id,omitempty"`
	Name            string `json:"name"`
	InstitutionType string `json:"institution_type,omitempty"`
}

// ItemID implements the resource item contract.
func (i Institution) ItemID() int64 {
	return i.ID
}

// InstitutionAssociation links a user to an institution with a role
// (e.g. "teacher", "volunteer"). It exists only nested under a [User] and is
// persisted when the user is saved.
type InstitutionAssociation struct {
	ID          int64       `json:"id,omitempty"`
	Role        string      `json:"role"`
	Institution Institution `json:"institution"`
}

// FilterInstitutionAssociations drops entries whose institution name is blank.
// Entries with a name are returned unchanged and in their original order.
// The result is never nil.
func FilterInstitutionAssociations(associations []InstitutionAssociation) []InstitutionAssociation {
	filtered := make([]InstitutionAssociation, 0, len(associations))
	for _, a := range associations {
		if strings.TrimSpace(a.Institution.Name) == "" {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}
