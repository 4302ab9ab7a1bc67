package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/MKhiriev/go-deck-builder/internal/adapter"
	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/internal/session"
	"github.com/MKhiriev/go-deck-builder/internal/store"
	"github.com/MKhiriev/go-deck-builder/models"
)

// workflowService implements the deck and card actions.
//
// catalog is consulted whenever a card is persisted, so a stored card always
// reflects a fresh lookup. previews may be a caching decorator and serves
// search results and dashboard pictures only.
type workflowService struct {
	users store.UserRepository
	cards store.CardRepository
	decks store.DeckRepository

	catalog  adapter.CardCatalog
	previews adapter.CardCatalog

	logger *logger.Logger
}

func NewWorkflowService(storages *store.Storages, catalog, previews adapter.CardCatalog, logger *logger.Logger) WorkflowService {
	if previews == nil {
		previews = catalog
	}

	return &workflowService{
		users:    storages.UserRepository,
		cards:    storages.CardRepository,
		decks:    storages.DeckRepository,
		catalog:  catalog,
		previews: previews,
		logger:   logger,
	}
}

// Search looks cardName up without persisting anything.
func (s *workflowService) Search(ctx context.Context, cardName string) (models.CardRecord, error) {
	record, err := s.previews.FetchByFuzzyName(ctx, cardName)
	if err != nil {
		return models.CardRecord{}, fmt.Errorf("card search failed: %w", err)
	}
	return record, nil
}

// Random returns a random card from the catalog.
func (s *workflowService) Random(ctx context.Context) (models.CardRecord, error) {
	record, err := s.catalog.FetchRandom(ctx)
	if err != nil {
		return models.CardRecord{}, fmt.Errorf("random card lookup failed: %w", err)
	}
	return record, nil
}

// AddCard re-fetches the session's card and stores it in the active deck,
// or in the user's default deck when no deck is active. The insert is the
// last step, so a failed lookup leaves nothing behind.
func (s *workflowService) AddCard(ctx context.Context, state session.State) (models.Card, error) {
	log := logger.FromContext(ctx)

	if !state.Has(session.KeyCard) {
		return models.Card{}, ErrNoCardSelected
	}

	user, err := s.currentUser(ctx, state)
	if err != nil {
		return models.Card{}, err
	}

	record, err := s.catalog.FetchByFuzzyName(ctx, state.Card)
	if err != nil {
		return models.Card{}, fmt.Errorf("card lookup before adding failed: %w", err)
	}

	var card models.Card
	if state.Has(session.KeyDeckName) {
		deck, findErr := s.decks.FindDeckByName(ctx, user.UserID, state.DeckName)
		if findErr != nil {
			return models.Card{}, fmt.Errorf("active deck lookup failed: %w", findErr)
		}
		card, err = s.decks.AddCard(ctx, deck.DeckID, record.ToCard(deck.DeckID))
	} else {
		card, err = s.decks.AddCardToDefaultDeck(ctx, user.UserID, record.ToCard(0))
	}
	if err != nil {
		return models.Card{}, fmt.Errorf("adding card failed: %w", err)
	}

	log.Debug().Int64("card_id", card.CardID).Int64("deck_id", card.DeckID).Str("card", card.Name).Msg("card added")
	return card, nil
}

// RemoveCard deletes every card named cardName across all of the user's
// decks and reports how many were removed.
func (s *workflowService) RemoveCard(ctx context.Context, state session.State, cardName string) (int64, error) {
	user, err := s.currentUser(ctx, state)
	if err != nil {
		return 0, err
	}

	removed, err := s.cards.DeleteCardsByName(ctx, user.UserID, cardName)
	if err != nil {
		return 0, fmt.Errorf("removing card failed: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("removed", removed).Str("card", cardName).Msg("cards removed")
	return removed, nil
}

// AddDeck fetches the commander and creates the deck together with its
// commander card.
func (s *workflowService) AddDeck(ctx context.Context, state session.State, commanderName string) (models.Deck, error) {
	user, err := s.currentUser(ctx, state)
	if err != nil {
		return models.Deck{}, err
	}

	record, err := s.catalog.FetchByFuzzyName(ctx, commanderName)
	if err != nil {
		return models.Deck{}, fmt.Errorf("commander lookup failed: %w", err)
	}

	deck, _, err := s.decks.CreateDeckWithCommander(ctx,
		models.Deck{Name: commanderName, UserID: user.UserID},
		record.ToCard(0),
	)
	if err != nil {
		return models.Deck{}, fmt.Errorf("deck creation failed: %w", err)
	}

	return deck, nil
}

// PreviewOnly resolves a stored card of the user by name.
func (s *workflowService) PreviewOnly(ctx context.Context, state session.State, cardName string) (models.Card, error) {
	user, err := s.currentUser(ctx, state)
	if err != nil {
		return models.Card{}, err
	}

	card, err := s.cards.FindCardByName(ctx, user.UserID, cardName)
	if err != nil {
		return models.Card{}, fmt.Errorf("card preview failed: %w", err)
	}
	return card, nil
}

// Dashboard assembles the dashboard of the session's user.
//
// Without an active deck every card of the user is listed under
// [models.AllCardsTitle]. previewName, when set, is resolved against the
// stored cards first and the catalog second. A non-empty query keeps only
// the cards whose names fuzzy-match it, best match first.
func (s *workflowService) Dashboard(ctx context.Context, state session.State, previewName, query string) (models.Dashboard, error) {
	user, err := s.currentUser(ctx, state)
	if err != nil {
		return models.Dashboard{}, err
	}

	decks, err := s.decks.ListDecks(ctx, user.UserID)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("listing decks failed: %w", err)
	}

	view := models.Dashboard{
		Username:   user.Username,
		Title:      models.AllCardsTitle,
		ActiveDeck: state.DeckName,
		Decks:      decks,
		Query:      query,
	}

	if state.Has(session.KeyDeckName) {
		deck, findErr := s.decks.FindDeckByName(ctx, user.UserID, state.DeckName)
		if findErr != nil {
			return models.Dashboard{}, fmt.Errorf("active deck lookup failed: %w", findErr)
		}
		view.Title = deck.Name
		view.Cards, err = s.cards.ListDeckCards(ctx, deck.DeckID)
	} else {
		view.Cards, err = s.cards.ListUserCards(ctx, user.UserID)
	}
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("listing cards failed: %w", err)
	}

	view.Cards = filterCards(view.Cards, query)

	if previewName != "" {
		view.Preview, err = s.preview(ctx, user.UserID, previewName)
		if err != nil {
			return models.Dashboard{}, err
		}
	}

	return view, nil
}

func (s *workflowService) preview(ctx context.Context, userID int64, name string) (*models.CardPreview, error) {
	card, err := s.cards.FindCardByName(ctx, userID, name)
	if err == nil {
		return &models.CardPreview{Name: card.Name, Picture: card.Picture}, nil
	}
	if !errors.Is(err, store.ErrCardNotFound) {
		return nil, fmt.Errorf("preview lookup failed: %w", err)
	}

	record, err := s.previews.FetchByFuzzyName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("preview lookup failed: %w", err)
	}
	return &models.CardPreview{Name: record.Name, Picture: record.ImageURL}, nil
}

// currentUser resolves the session's username to a stored user.
func (s *workflowService) currentUser(ctx context.Context, state session.State) (models.User, error) {
	if !state.Has(session.KeyUsername) {
		return models.User{}, ErrNotAuthenticated
	}

	user, err := s.users.FindUserByUsername(ctx, state.Username)
	if err != nil {
		return models.User{}, fmt.Errorf("session user lookup failed: %w", err)
	}
	return user, nil
}

// cardNames adapts a card slice to [fuzzy.Source].
type cardNames []models.Card

func (c cardNames) String(i int) string { return c[i].Name }
func (c cardNames) Len() int            { return len(c) }

func filterCards(cards []models.Card, query string) []models.Card {
	query = strings.TrimSpace(query)
	if query == "" {
		return cards
	}

	matches := fuzzy.FindFrom(query, cardNames(cards))
	filtered := make([]models.Card, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, cards[m.Index])
	}
	return filtered
}
