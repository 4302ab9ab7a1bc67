package store

import (
	"context"

	"github.com/MKhiriev/go-deck-builder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// CardRepository reads and removes cards of a user.
type CardRepository interface {
	ListUserCards(ctx context.Context, userID int64) ([]models.Card, error)
	ListDeckCards(ctx context.Context, deckID int64) ([]models.Card, error)
	FindCardByName(ctx context.Context, userID int64, name string) (models.Card, error)
	DeleteCardsByName(ctx context.Context, userID int64, name string) (int64, error)
}

// DeckRepository creates decks and adds cards to them.
type DeckRepository interface {
	FindDeckByName(ctx context.Context, userID int64, name string) (models.Deck, error)
	ListDecks(ctx context.Context, userID int64) ([]models.Deck, error)
	CreateDeckWithCommander(ctx context.Context, deck models.Deck, commander models.Card) (models.Deck, models.Card, error)
	AddCard(ctx context.Context, deckID int64, card models.Card) (models.Card, error)
	AddCardToDefaultDeck(ctx context.Context, userID int64, card models.Card) (models.Card, error)
}

// ErrorClassificator inspects driver errors of one database dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
