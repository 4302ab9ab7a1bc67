package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-deck-builder/internal/config"
	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/internal/utils"
	"github.com/MKhiriev/go-deck-builder/models"
)

const (
	randomCardPath = "/cards/random"
	namedCardPath  = "/cards/named"
)

type httpCardCatalog struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// catalogCard is the subset of the catalog's card object the deck builder
// reads. Pointers tell missing fields apart from zero values.
type catalogCard struct {
	Name      string  `json:"name"`
	CMC       float64 `json:"cmc"`
	TypeLine  string  `json:"type_line"`
	ImageURIs *struct {
		Normal string `json:"normal"`
	} `json:"image_uris"`
	Prices struct {
		USD *string `json:"usd"`
	} `json:"prices"`
}

// NewHTTPCardCatalog constructs an HTTP implementation of [CardCatalog].
// It normalises and validates the base URL from cfg.CatalogURL and
// configures the underlying HTTP client with the request timeout and the
// headers the catalog requires.
//
// Returns an error if cfg.CatalogURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPCardCatalog(cfg config.Adapter, logger *logger.Logger) (CardCatalog, error) {
	baseURL, err := normalizeBaseURL(cfg.CatalogURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog url: %w", err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(cfg.RequestTimeout),
		utils.WithHeader("Accept", "application/json"),
		utils.WithHeader("User-Agent", cfg.UserAgent),
	)

	return &httpCardCatalog{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchRandom implements [CardCatalog]. It GETs /cards/random.
func (h *httpCardCatalog) FetchRandom(ctx context.Context) (models.CardRecord, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(randomCardPath)
	if err != nil {
		return h.fail(ctx, "FetchRandom", fmt.Errorf("random card request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return h.fail(ctx, "FetchRandom", err)
	}

	record, err := decodeCard(resp.Body())
	if err != nil {
		return h.fail(ctx, "FetchRandom", err)
	}

	return record, nil
}

// FetchByFuzzyName implements [CardCatalog]. It GETs
// /cards/named?fuzzy=<name>.
func (h *httpCardCatalog) FetchByFuzzyName(ctx context.Context, name string) (models.CardRecord, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("fuzzy", name).
		Get(namedCardPath)
	if err != nil {
		return h.fail(ctx, "FetchByFuzzyName", fmt.Errorf("named card request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return h.fail(ctx, "FetchByFuzzyName", err)
	}

	record, err := decodeCard(resp.Body())
	if err != nil {
		return h.fail(ctx, "FetchByFuzzyName", err)
	}

	return record, nil
}

func (h *httpCardCatalog) fail(ctx context.Context, op string, err error) (models.CardRecord, error) {
	logger.FromContext(ctx).Warn().
		Err(err).
		Str("func", "httpCardCatalog."+op).
		Msg("card lookup failed")
	return models.CardRecord{}, fmt.Errorf("%w: %w", ErrLookupFailure, err)
}

// decodeCard maps a catalog card body to a [models.CardRecord]. A card
// without a normal-size image or a USD price is rejected.
func decodeCard(body []byte) (models.CardRecord, error) {
	var card catalogCard
	if err := json.Unmarshal(body, &card); err != nil {
		return models.CardRecord{}, fmt.Errorf("decode card: %w", err)
	}

	if card.ImageURIs == nil || card.ImageURIs.Normal == "" {
		return models.CardRecord{}, fmt.Errorf("%w: %q has no image", ErrMalformedCard, card.Name)
	}
	if card.Prices.USD == nil {
		return models.CardRecord{}, fmt.Errorf("%w: %q has no usd price", ErrMalformedCard, card.Name)
	}

	price, err := strconv.ParseFloat(*card.Prices.USD, 64)
	if err != nil {
		return models.CardRecord{}, fmt.Errorf("%w: %q has invalid usd price: %w", ErrMalformedCard, card.Name, err)
	}

	return models.CardRecord{
		Name:     card.Name,
		ImageURL: card.ImageURIs.Normal,
		CMC:      card.CMC,
		Price:    price,
		Type:     card.TypeLine,
	}, nil
}
