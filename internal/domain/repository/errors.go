package repository

import "errors"

var (
	// ErrNotFound covers missing rows and rows owned by another user alike;
	// callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail maps the unique index violation on users.email.
	ErrDuplicateEmail = errors.New("email already registered")
)
