// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterInstitutionAssociations(t *testing.T) {
	kept1 := InstitutionAssociation{Role: "teacher", Institution: Institution{Name: "Central High"}}
	kept2 := InstitutionAssociation{Role: "", Institution: Institution{ID: 4, Name: " Museum "}}

	got := FilterInstitutionAssociations([]InstitutionAssociation{
		kept1,
		{Role: "volunteer", Institution: Institution{Name: ""}},
		{Role: "mentor", Institution: Institution{Name: "   "}},
		kept2,
	})

	assert.Equal(t, []InstitutionAssociation{kept1, kept2}, got)
}

func TestFilterInstitutionAssociations_NeverNil(t *testing.T) {
	assert.NotNil(t, FilterInstitutionAssociations(nil))
}

func TestUser_CloneIsDeep(t *testing.T) {
	u := User{ID: 1, InstitutionAssociations: []InstitutionAssociation{{Role: "a"}}}

	c := u.Clone()
	c.InstitutionAssociations[0].Role = "b"

	assert.Equal(t, "a", u.InstitutionAssociations[0].Role)
}

func TestSearch_Roles(t *testing.T) {
	assert.True(t, IsValidRole(RoleEducator))
	assert.True(t, IsValidRole(RolePartner))
	assert.False(t, IsValidRole("admin"))
	assert.Equal(t, RolePartner, OppositeRole(RoleEducator))
	assert.Equal(t, RoleEducator, OppositeRole(RolePartner))
	assert.Equal(t, "/search/12/results", Search{ID: 12}.ResultsPath())
}
