// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultDeckName is the name of the per-user deck that receives cards
// added while no deck is active.
const DefaultDeckName = "Unsorted"

// Deck groups cards owned by a single user.
// A deck is named after its commander card; the commander itself is stored
// as a regular card of the deck and referenced by CardID.
type Deck struct {
	DeckID int64 `json:"id" db:"id"`

	// Name is the commander name as the user typed it.
	Name string `json:"name" db:"name"`

	// UserID references the owner of the deck.
	UserID int64 `json:"-" db:"user_id"`

	// CardID references the commander card row. It is nil for the default
	// deck and after the commander card has been removed.
	CardID *int64 `json:"card_id,omitempty" db:"card_id"`
}

// TableName returns the name of the database table
// associated with the Deck model.
func (d Deck) TableName() string {
	return "decks"
}
