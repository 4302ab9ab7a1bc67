// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Card is a persisted card row. Every card belongs to exactly one deck.
// Cards are created by a catalog lookup followed by an insert, removed by
// name and never updated in place.
type Card struct {
	CardID int64 `json:"id" db:"id"`

	// Name is the canonical card name returned by the catalog.
	Name string `json:"name" db:"name"`

	// Picture is the URL of the card image.
	Picture string `json:"picture" db:"picture"`

	// CMC is the converted mana cost of the card.
	CMC float64 `json:"cmc" db:"cmc"`

	// Price is the market price in USD.
	Price float64 `json:"price" db:"price"`

	// Type is the free-text type line (e.g. "Legendary Creature — Phyrexian Angel Horror").
	Type string `json:"type" db:"type"`

	// DeckID references the deck this card belongs to.
	DeckID int64 `json:"deck_id" db:"deck_id"`
}

// TableName returns the name of the database table
// associated with the Card model.
func (c Card) TableName() string {
	return "cards"
}

// CardRecord is a normalized card returned by the external card catalog.
// It is not persisted as-is; [CardRecord.ToCard] converts it into a row.
type CardRecord struct {
	Name     string  `json:"name"`
	ImageURL string  `json:"image_url"`
	CMC      float64 `json:"cmc"`
	Price    float64 `json:"price"`
	Type     string  `json:"type"`
}

// ToCard converts the catalog record into a [Card] assigned to deckID.
func (r CardRecord) ToCard(deckID int64) Card {
	return Card{
		Name:    r.Name,
		Picture: r.ImageURL,
		CMC:     r.CMC,
		Price:   r.Price,
		Type:    r.Type,
		DeckID:  deckID,
	}
}
