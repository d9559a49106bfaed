// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"

	"github.com/MKhiriev/go-community-share/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation matches every [*Error] with errors.Is.
	ErrValidation = errors.New("validation failed")
)

// Error is a rejected field. Message is safe to return to API clients.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Field + ": " + e.Message
}

func (e *Error) Is(target error) bool {
	return target == ErrValidation
}

var (
	ErrNameRequired        = &Error{Field: FieldName, Message: app.MsgNameRequired}
	ErrInvalidEmail        = &Error{Field: FieldEmail, Message: app.MsgInvalidEmail}
	ErrPasswordTooShort    = &Error{Field: FieldPassword, Message: app.MsgPasswordTooShort}
	ErrPasswordRequired    = &Error{Field: FieldPassword, Message: app.MsgInvalidEmailOrPassword}
	ErrKeyRequired         = &Error{Field: FieldKey, Message: app.MsgInvalidOrExpiredKey}
	ErrInvalidSearchRoles  = &Error{Field: FieldSearchRoles, Message: app.MsgInvalidSearchRole}
	ErrInvalidLocation     = &Error{Field: FieldLocation, Message: "Latitude, longitude or distance out of range"}
	ErrInvalidInstitution  = &Error{Field: FieldInstitutionName, Message: app.MsgInvalidName}
	ErrEmptyContent        = &Error{Field: FieldContent, Message: app.MsgEmptyMessage}
	ErrInvalidReference    = &Error{Field: FieldConversationID, Message: app.MsgBadRequest}
	ErrInvalidParticipants = &Error{Field: FieldParticipants, Message: app.MsgInvalidParticipant}
)
