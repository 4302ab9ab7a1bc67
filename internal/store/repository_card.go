package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/models"
)

// cardRepository is the SQL implementation of [CardRepository].
// Cards are always reached through the decks of a user.
type cardRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCardRepository constructs a [CardRepository] backed by db.
func NewCardRepository(db *DB, logger *logger.Logger) CardRepository {
	logger.Debug().Msg("creating card repository")
	return &cardRepository{
		db:     db,
		logger: logger,
	}
}

// ListUserCards returns every card in every deck of the user, oldest first.
func (r *cardRepository) ListUserCards(ctx context.Context, userID int64) ([]models.Card, error) {
	query, args, err := r.db.listUserCardsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	cards, err := queryCards(ctx, r.db, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cardRepository.ListUserCards").
			Int64("user_id", userID).
			Msg("failed to list user cards")
		return nil, err
	}

	return cards, nil
}

// ListDeckCards returns the cards of one deck, oldest first.
func (r *cardRepository) ListDeckCards(ctx context.Context, deckID int64) ([]models.Card, error) {
	query, args, err := r.db.listDeckCardsQuery(deckID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	cards, err := queryCards(ctx, r.db, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cardRepository.ListDeckCards").
			Int64("deck_id", deckID).
			Msg("failed to list deck cards")
		return nil, err
	}

	return cards, nil
}

// FindCardByName returns the most recently added card of the user with
// the given name, or [ErrCardNotFound].
func (r *cardRepository) FindCardByName(ctx context.Context, userID int64, name string) (models.Card, error) {
	query, args, err := r.db.findCardByNameQuery(userID, name)
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	card, err := scanCard(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Card{}, ErrCardNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "cardRepository.FindCardByName").
			Int64("user_id", userID).
			Msg("failed to find card")
		return models.Card{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return card, nil
}

// DeleteCardsByName removes every card with the given name from all decks
// of the user and returns the number of removed rows. Removing a name the
// user does not own is not an error.
func (r *cardRepository) DeleteCardsByName(ctx context.Context, userID int64, name string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.deleteCardsByNameQuery(userID, name)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "cardRepository.DeleteCardsByName").
			Int64("user_id", userID).
			Msg("failed to delete cards")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().
		Str("func", "cardRepository.DeleteCardsByName").
		Int64("user_id", userID).
		Int64("deleted", deleted).
		Msg("cards deleted")

	return deleted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (models.Card, error) {
	var card models.Card
	err := row.Scan(&card.CardID, &card.Name, &card.Picture, &card.CMC, &card.Price, &card.Type, &card.DeckID)
	return card, err
}

func queryCards(ctx context.Context, q querier, query string, args ...any) ([]models.Card, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cards := make([]models.Card, 0, 50)
	for rows.Next() {
		card, scanErr := scanCard(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		cards = append(cards, card)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cards, nil
}
