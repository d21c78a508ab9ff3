// Package common holds the error taxonomy shared by storage, services and handlers.
package common

import "errors"

var (
	// ErrDuplicateUsername is returned when registering a username that is already taken.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials covers both an unknown username and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound is returned by stores when the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmptyMessage rejects chat submissions that carry no text.
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrInvalidInput is returned for malformed registration input.
	ErrInvalidInput = errors.New("invalid input")
)
