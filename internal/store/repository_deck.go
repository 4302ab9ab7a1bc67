package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/models"
)

// deckRepository is the SQL implementation of [DeckRepository].
//
// Every multi-statement operation runs in one transaction and issues all of
// its statements through that transaction.
type deckRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDeckRepository constructs a [DeckRepository] backed by db.
func NewDeckRepository(db *DB, logger *logger.Logger) DeckRepository {
	logger.Debug().Msg("creating deck repository")
	return &deckRepository{
		db:     db,
		logger: logger,
	}
}

// FindDeckByName returns the most recently created deck of the user with the
// given name, or [ErrDeckNotFound].
func (r *deckRepository) FindDeckByName(ctx context.Context, userID int64, name string) (models.Deck, error) {
	deck, err := r.findDeckByName(ctx, r.db, userID, name)
	if err != nil && !errors.Is(err, ErrDeckNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "deckRepository.FindDeckByName").
			Int64("user_id", userID).
			Msg("failed to find deck")
	}
	return deck, err
}

// ListDecks returns every deck of the user, oldest first.
func (r *deckRepository) ListDecks(ctx context.Context, userID int64) ([]models.Deck, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.listDecksQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "deckRepository.ListDecks").
			Int64("user_id", userID).
			Msg("failed to execute query for listing decks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	decks := make([]models.Deck, 0, 8)
	for rows.Next() {
		deck, scanErr := scanDeck(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "deckRepository.ListDecks").
				Int64("user_id", userID).
				Msg("failed to scan deck row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		decks = append(decks, deck)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return decks, nil
}

// CreateDeckWithCommander inserts deck, inserts commander as the first card
// of the new deck and records it as the deck's commander. Either all three
// statements take effect or none does.
func (r *deckRepository) CreateDeckWithCommander(ctx context.Context, deck models.Deck, commander models.Card) (models.Deck, models.Card, error) {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		deckID, err := r.insertDeck(ctx, tx, deck)
		if err != nil {
			return err
		}
		deck.DeckID = deckID

		commander.DeckID = deckID
		cardID, err := r.insertCard(ctx, tx, commander)
		if err != nil {
			return err
		}
		commander.CardID = cardID

		query, args, err := r.db.setDeckCommanderQuery(deckID, cardID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		deck.CardID = &cardID

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "deckRepository.CreateDeckWithCommander").
			Int64("user_id", deck.UserID).
			Str("deck_name", deck.Name).
			Msg("failed to create deck")
		return models.Deck{}, models.Card{}, err
	}

	log.Info().
		Str("func", "deckRepository.CreateDeckWithCommander").
		Int64("deck_id", deck.DeckID).
		Int64("card_id", commander.CardID).
		Msg("deck created")

	return deck, commander, nil
}

// AddCard inserts card into the deck identified by deckID.
func (r *deckRepository) AddCard(ctx context.Context, deckID int64, card models.Card) (models.Card, error) {
	card.DeckID = deckID

	cardID, err := r.insertCard(ctx, r.db, card)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "deckRepository.AddCard").
			Int64("deck_id", deckID).
			Msg("failed to add card")
		return models.Card{}, err
	}
	card.CardID = cardID

	return card, nil
}

// AddCardToDefaultDeck inserts card into the user's [models.DefaultDeckName]
// deck, creating that deck first when the user has none. At most one default
// deck exists per user; a request that loses the race to create it runs again
// and uses the winner's deck.
func (r *deckRepository) AddCardToDefaultDeck(ctx context.Context, userID int64, card models.Card) (models.Card, error) {
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		deckID, err := r.defaultDeckID(ctx, tx, userID)
		if err != nil {
			return err
		}

		card.DeckID = deckID
		card.CardID, err = r.insertCard(ctx, tx, card)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "deckRepository.AddCardToDefaultDeck").
			Int64("user_id", userID).
			Msg("failed to add card to default deck")
		return models.Card{}, err
	}

	return card, nil
}

func (r *deckRepository) defaultDeckID(ctx context.Context, q querier, userID int64) (int64, error) {
	query, args, err := r.db.findDefaultDeckQuery(userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deck, err := scanDeck(q.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return deck.DeckID, nil
	case !errors.Is(err, sql.ErrNoRows):
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err = r.db.insertDefaultDeckQuery(userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if r.db.isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %w", errConcurrentInsert, err)
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

func (r *deckRepository) findDeckByName(ctx context.Context, q querier, userID int64, name string) (models.Deck, error) {
	query, args, err := r.db.findDeckByNameQuery(userID, name)
	if err != nil {
		return models.Deck{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deck, err := scanDeck(q.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Deck{}, ErrDeckNotFound
	case err != nil:
		return models.Deck{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return deck, nil
}

func (r *deckRepository) insertDeck(ctx context.Context, q querier, deck models.Deck) (int64, error) {
	query, args, err := r.db.insertDeckQuery(deck)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

func (r *deckRepository) insertCard(ctx context.Context, q querier, card models.Card) (int64, error) {
	query, args, err := r.db.insertCardQuery(card)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

func scanDeck(row rowScanner) (models.Deck, error) {
	var (
		deck   models.Deck
		cardID sql.NullInt64
	)
	if err := row.Scan(&deck.DeckID, &deck.Name, &deck.UserID, &cardID); err != nil {
		return models.Deck{}, err
	}
	if cardID.Valid {
		deck.CardID = &cardID.Int64
	}
	return deck, nil
}
