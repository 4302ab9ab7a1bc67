package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/internal/session"
	"github.com/MKhiriev/go-deck-builder/internal/store"
	"github.com/MKhiriev/go-deck-builder/models"
)

const (
	PriceChartTitle     = "Price distribution"
	ManaCurveChartTitle = "Mana curve"
)

// PriceLabels name the bins of [PriceHistogram], in order.
var PriceLabels = []string{"< $0.49", "$0.49 - $0.74", "$0.75 - $0.99", "$1.00 - $1.99", "$2.00 - $4.99", "$5.00+"}

// ManaCurveLabels name the bins of [ManaCurveHistogram], in order.
var ManaCurveLabels = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8+"}

// PriceHistogram counts cards per price bin. Bin 0 is strictly below 0.49,
// so 0.49 itself lands in bin 1; the remaining upper bounds are inclusive.
func PriceHistogram(cards []models.Card) [6]int {
	var bins [6]int
	for _, c := range cards {
		switch p := c.Price; {
		case p < 0.49:
			bins[0]++
		case p <= 0.74:
			bins[1]++
		case p <= 0.99:
			bins[2]++
		case p <= 1.99:
			bins[3]++
		case p <= 4.99:
			bins[4]++
		default:
			bins[5]++
		}
	}
	return bins
}

// ManaCurveHistogram counts cards per converted mana cost. Costs 0 through
// 7 get their own bin; any other value, including 8 and above, fractional
// and negative costs, lands in bin 8.
func ManaCurveHistogram(cards []models.Card) [9]int {
	var bins [9]int
	for _, c := range cards {
		cmc := c.CMC
		if cmc >= 0 && cmc <= 7 && cmc == float64(int(cmc)) {
			bins[int(cmc)]++
			continue
		}
		bins[8]++
	}
	return bins
}

type chartService struct {
	users store.UserRepository
	cards store.CardRepository
	decks store.DeckRepository

	logger *logger.Logger
}

func NewChartService(storages *store.Storages, logger *logger.Logger) ChartService {
	return &chartService{
		users:  storages.UserRepository,
		cards:  storages.CardRepository,
		decks:  storages.DeckRepository,
		logger: logger,
	}
}

func (s *chartService) PriceChart(ctx context.Context, state session.State) (models.Chart, error) {
	deck, cards, err := s.activeDeckCards(ctx, state)
	if err != nil {
		return models.Chart{}, err
	}

	bins := PriceHistogram(cards)
	return newChart(PriceChartTitle, deck.Name, PriceLabels, bins[:]), nil
}

func (s *chartService) ManaCurveChart(ctx context.Context, state session.State) (models.Chart, error) {
	deck, cards, err := s.activeDeckCards(ctx, state)
	if err != nil {
		return models.Chart{}, err
	}

	bins := ManaCurveHistogram(cards)
	return newChart(ManaCurveChartTitle, deck.Name, ManaCurveLabels, bins[:]), nil
}

// activeDeckCards resolves the session's deck by name, then its cards by
// deck id.
func (s *chartService) activeDeckCards(ctx context.Context, state session.State) (models.Deck, []models.Card, error) {
	if !state.Has(session.KeyUsername) {
		return models.Deck{}, nil, ErrNotAuthenticated
	}
	if !state.Has(session.KeyDeckName) {
		return models.Deck{}, nil, ErrNoActiveDeck
	}

	user, err := s.users.FindUserByUsername(ctx, state.Username)
	if err != nil {
		return models.Deck{}, nil, fmt.Errorf("session user lookup failed: %w", err)
	}

	deck, err := s.decks.FindDeckByName(ctx, user.UserID, state.DeckName)
	if err != nil {
		return models.Deck{}, nil, fmt.Errorf("active deck lookup failed: %w", err)
	}

	cards, err := s.cards.ListDeckCards(ctx, deck.DeckID)
	if err != nil {
		return models.Deck{}, nil, fmt.Errorf("listing deck cards failed: %w", err)
	}

	return deck, cards, nil
}

func newChart(title, deck string, labels []string, counts []int) models.Chart {
	total := 0
	for _, n := range counts {
		total += n
	}

	return models.Chart{
		Title:  title,
		Deck:   deck,
		Labels: labels,
		Counts: counts,
		Total:  total,
	}
}
