package domain

import "errors"

var (
	// ErrNotFound indicates that a program, exercise, workout, or record
	// looked up by id or name has no match for the requesting owner.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail indicates a signup attempt with an email that is
	// already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)
