// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("record was not found")

	// ErrEmailAlreadyExists is returned when a user is created with an email
	// that is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInstitutionAlreadyExists is returned when an institution name is
	// taken.
	ErrInstitutionAlreadyExists = errors.New("institution already exists")

	// ErrInvalidReference is returned when a row points at a user, search or
	// conversation that does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")

	// ErrSecretAlreadyUsed is returned when a single-use key is redeemed twice.
	ErrSecretAlreadyUsed = errors.New("secret was already used")

	// ErrNoStoredSession is returned by the client session store when nothing
	// was saved yet.
	ErrNoStoredSession = errors.New("no stored session")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
