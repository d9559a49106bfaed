// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-community-share/models"
)

// Field names accepted by [CommunityValidator.Validate].
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldPasswordPresent = "password_present"
	FieldKey             = "key"
	FieldSearchRoles     = "search_roles"
	FieldLocation        = "location"
	FieldInstitutionName = "institution_name"
	FieldAssociations    = "institution_associations"
	FieldContent         = "content"
	FieldConversationID  = "conversation_id"
	FieldParticipants    = "participants"
)

// PasswordMinLength is the shortest password signup and reset accept.
const PasswordMinLength = 8

// CommunityValidator validates the request bodies of the CommunityShare API.
type CommunityValidator struct{}

func NewCommunityValidator() Validator {
	return &CommunityValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are both accepted.
func (v *CommunityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.ResetPasswordRequest:
		return v.validateResetPassword(value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateResetPassword(*value, fields...)

	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.Institution:
		return v.validateInstitution(value, fields...)
	case *models.Institution:
		return v.validateInstitution(*value, fields...)

	case models.Search:
		return v.validateSearch(value, fields...)
	case *models.Search:
		return v.validateSearch(*value, fields...)

	case models.Conversation:
		return v.validateConversation(value, fields...)
	case *models.Conversation:
		return v.validateConversation(*value, fields...)

	case models.Message:
		return v.validateMessage(value, fields...)
	case *models.Message:
		return v.validateMessage(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CommunityValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				return ErrNameRequired
			}
		case FieldEmail:
			if !isEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if utf8.RuneCountInString(req.Password) < PasswordMinLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *CommunityValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPasswordPresent}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(creds.Email) {
				return ErrInvalidEmail
			}
		case FieldPasswordPresent:
			if creds.Password == "" {
				return ErrPasswordRequired
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *CommunityValidator) validateResetPassword(req models.ResetPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldKey:
			if strings.TrimSpace(req.Key) == "" {
				return ErrKeyRequired
			}
		case FieldPassword:
			if utf8.RuneCountInString(req.Password) < PasswordMinLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *CommunityValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldAssociations}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				return ErrNameRequired
			}
		case FieldEmail:
			if !isEmail(user.Email) {
				return ErrInvalidEmail
			}
		case FieldAssociations:
			for i, a := range user.InstitutionAssociations {
				if err := v.validateInstitution(a.Institution, FieldInstitutionName); err != nil {
					return fmt.Errorf("institution association %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *CommunityValidator) validateInstitution(institution models.Institution, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldInstitutionName}
	}

	for _, f := range fields {
		switch f {
		case FieldInstitutionName:
			n := utf8.RuneCountInString(strings.TrimSpace(institution.Name))
			if n == 0 || n > models.InstitutionNameMaxLength {
				return ErrInvalidInstitution
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *CommunityValidator) validateSearch(search models.Search, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSearchRoles, FieldLocation}
	}

	for _, f := range fields {
		switch f {
		case FieldSearchRoles:
			if !models.IsValidRole(search.SearcherRole) || search.SearchingForRole != models.OppositeRole(search.SearcherRole) {
				return ErrInvalidSearchRoles
			}
		case FieldLocation:
			if !inRange(search.Latitude, -90, 90) || !inRange(search.Longitude, -180, 180) {
				return ErrInvalidLocation
			}
			if search.Distance != nil && *search.Distance < 0 {
				return ErrInvalidLocation
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *CommunityValidator) validateConversation(conversation models.Conversation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldParticipants}
	}

	for _, f := range fields {
		switch f {
		case FieldParticipants:
			if conversation.UserAID <= 0 || conversation.UserBID <= 0 || conversation.UserAID == conversation.UserBID {
				return ErrInvalidParticipants
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *CommunityValidator) validateMessage(message models.Message, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldConversationID, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldConversationID:
			if message.ConversationID <= 0 {
				return ErrInvalidReference
			}
		case FieldContent:
			if strings.TrimSpace(message.Content) == "" {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func isEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func inRange(f *float64, lo, hi float64) bool {
	return f == nil || (*f >= lo && *f <= hi)
}
