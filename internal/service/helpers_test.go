package service

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-deck-builder/internal/mock"
	"github.com/MKhiriev/go-deck-builder/internal/store"
	"github.com/MKhiriev/go-deck-builder/models"
)

type testRepos struct {
	users *mock.MockUserRepository
	cards *mock.MockCardRepository
	decks *mock.MockDeckRepository
}

func newTestRepos(t *testing.T) (*store.Storages, testRepos) {
	t.Helper()
	ctrl := gomock.NewController(t)
	r := testRepos{
		users: mock.NewMockUserRepository(ctrl),
		cards: mock.NewMockCardRepository(ctrl),
		decks: mock.NewMockDeckRepository(ctrl),
	}
	return &store.Storages{
		UserRepository: r.users,
		CardRepository: r.cards,
		DeckRepository: r.decks,
	}, r
}

var alice = models.User{UserID: 7, Name: "Alice", Email: "alice@example.com", Username: "alice"}

func solRing() models.CardRecord {
	return models.CardRecord{
		Name:     "Sol Ring",
		ImageURL: "https://img.example/sol-ring.jpg",
		CMC:      1,
		Price:    1.5,
		Type:     "Artifact",
	}
}
