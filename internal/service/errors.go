package service

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown username and for a
	// wrong password alike.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotAuthenticated is returned when a workflow call carries a
	// session without a username.
	ErrNotAuthenticated = errors.New("session is not authenticated")

	// ErrNoCardSelected is returned by AddCard when no card was searched.
	ErrNoCardSelected = errors.New("no card selected")

	// ErrNoActiveDeck is returned by the charts when no deck is active.
	ErrNoActiveDeck = errors.New("no active deck")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
