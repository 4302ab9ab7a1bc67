package store

import "github.com/MKhiriev/go-deck-builder/internal/logger"

// Storages aggregates the repositories of the deck builder.
type Storages struct {
	UserRepository UserRepository
	CardRepository CardRepository
	DeckRepository DeckRepository
}

// NewStorages wires every repository to db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		CardRepository: NewCardRepository(db, log),
		DeckRepository: NewDeckRepository(db, log),
	}
}
