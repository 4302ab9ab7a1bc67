package adapter

import (
	"context"
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"github.com/MKhiriev/go-deck-builder/models"
)

// cachedCatalog serves repeated fuzzy-name lookups from an LRU cache.
// Random lookups and failures are never cached.
type cachedCatalog struct {
	next  CardCatalog
	cache *lru.Cache
}

// NewCachedCatalog decorates next with an LRU cache holding up to size
// fuzzy-name results. A non-positive size disables caching and returns next.
func NewCachedCatalog(next CardCatalog, size int) (CardCatalog, error) {
	if size <= 0 {
		return next, nil
	}

	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	return &cachedCatalog{next: next, cache: cache}, nil
}

// FetchRandom implements [CardCatalog].
func (c *cachedCatalog) FetchRandom(ctx context.Context) (models.CardRecord, error) {
	return c.next.FetchRandom(ctx)
}

// FetchByFuzzyName implements [CardCatalog].
func (c *cachedCatalog) FetchByFuzzyName(ctx context.Context, name string) (models.CardRecord, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if cached, ok := c.cache.Get(key); ok {
		return cached.(models.CardRecord), nil
	}

	record, err := c.next.FetchByFuzzyName(ctx, name)
	if err != nil {
		return models.CardRecord{}, err
	}

	c.cache.Add(key, record)
	return record, nil
}
