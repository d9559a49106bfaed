// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-community-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestValidate_Dispatch(t *testing.T) {
	v := NewCommunityValidator()
	ctx := context.Background()

	require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)

	req := models.SignupRequest{Name: "Ann", Email: "ann@example.com", Password: "password1"}
	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))

	assert.ErrorIs(t, v.Validate(ctx, req, "nope"), ErrUnknownField)
}

func TestValidate_Signup(t *testing.T) {
	v := NewCommunityValidator()
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.SignupRequest
		want error
	}{
		{name: "valid", req: models.SignupRequest{Name: "Ann", Email: "ann@example.com", Password: "password1"}},
		{name: "blank name", req: models.SignupRequest{Name: "  ", Email: "ann@example.com", Password: "password1"}, want: ErrNameRequired},
		{name: "bad email", req: models.SignupRequest{Name: "Ann", Email: "ann.example.com", Password: "password1"}, want: ErrInvalidEmail},
		{name: "display name email", req: models.SignupRequest{Name: "Ann", Email: "Ann <ann@example.com>", Password: "password1"}, want: ErrInvalidEmail},
		{name: "short password", req: models.SignupRequest{Name: "Ann", Email: "ann@example.com", Password: "short"}, want: ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestValidate_Credentials(t *testing.T) {
	v := NewCommunityValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Credentials{Email: "ann@example.com", Password: "x"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Email: "ann@example.com"}), ErrPasswordRequired)
	assert.ErrorIs(t, v.Validate(ctx, models.ResetPasswordRequest{Password: "password1"}), ErrKeyRequired)
}

func TestValidate_Institution(t *testing.T) {
	v := NewCommunityValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Institution{Name: strings.Repeat("a", 50)}))
	assert.ErrorIs(t, v.Validate(ctx, models.Institution{Name: strings.Repeat("a", 51)}), ErrInvalidInstitution)
	assert.ErrorIs(t, v.Validate(ctx, models.Institution{}), ErrInvalidInstitution)

	user := models.User{Name: "Ann", InstitutionAssociations: []models.InstitutionAssociation{
		{Institution: models.Institution{Name: "ok"}},
		{Institution: models.Institution{Name: strings.Repeat("b", 60)}},
	}}
	err := v.Validate(ctx, user)
	assert.ErrorIs(t, err, ErrInvalidInstitution)
	assert.Contains(t, err.Error(), "association 1")
}

func TestValidate_Search(t *testing.T) {
	v := NewCommunityValidator()
	ctx := context.Background()

	valid := models.Search{SearcherRole: models.RoleEducator, SearchingForRole: models.RolePartner, Latitude: ptr(51.5), Longitude: ptr(-0.1), Distance: ptr(10)}
	assert.NoError(t, v.Validate(ctx, valid))

	sameRole := valid
	sameRole.SearchingForRole = models.RoleEducator
	assert.ErrorIs(t, v.Validate(ctx, sameRole), ErrInvalidSearchRoles)

	badLat := valid
	badLat.Latitude = ptr(91)
	assert.ErrorIs(t, v.Validate(ctx, badLat), ErrInvalidLocation)

	negative := valid
	negative.Distance = ptr(-1)
	assert.ErrorIs(t, v.Validate(ctx, negative), ErrInvalidLocation)
}

func TestValidate_ConversationAndMessage(t *testing.T) {
	v := NewCommunityValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Conversation{UserAID: 1, UserBID: 2}))
	assert.ErrorIs(t, v.Validate(ctx, models.Conversation{UserAID: 1, UserBID: 1}), ErrInvalidParticipants)

	assert.NoError(t, v.Validate(ctx, models.Message{ConversationID: 1, Content: "hi"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Message{ConversationID: 1, Content: " "}), ErrEmptyContent)
	assert.ErrorIs(t, v.Validate(ctx, models.Message{Content: "hi"}), ErrInvalidReference)
}
