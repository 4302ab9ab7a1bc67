package session

import "errors"

var (
	// ErrInvalidSession is returned when a session cookie is malformed,
	// badly signed or expired.
	ErrInvalidSession = errors.New("invalid session cookie")

	// ErrEmptySignKey is returned when a cookie store is built without a key.
	ErrEmptySignKey = errors.New("empty session sign key")
)
