// Package store persists users, decks and cards in PostgreSQL or SQLite.
//
// [NewDB] selects the backend from the DSN scheme. Queries are built with
// squirrel in the placeholder format of the chosen dialect, and driver
// errors are classified per dialect so repositories can report
// [ErrUserAlreadyExists] for either backend.
package store
