// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the external card catalog.
//
// The primary abstraction is [CardCatalog], which decouples the service layer
// from the catalog's HTTP API. [NewHTTPCardCatalog] talks to a
// Scryfall-compatible API and [NewCachedCatalog] decorates any catalog with
// an LRU cache of fuzzy-name lookups.
//
// Every failure, whatever its cause, is returned wrapped in
// [ErrLookupFailure].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-deck-builder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/card_catalog_mock.go -package=mock

// CardCatalog looks cards up in the external catalog.
type CardCatalog interface {
	// FetchRandom returns one random card.
	FetchRandom(ctx context.Context) (models.CardRecord, error)

	// FetchByFuzzyName returns the card whose name best matches name.
	FetchByFuzzyName(ctx context.Context, name string) (models.CardRecord, error)
}
