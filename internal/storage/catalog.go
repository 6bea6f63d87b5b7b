package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/johanforsgren/gitcollection/internal/domain"
	"github.com/johanforsgren/gitcollection/internal/logger"
)

// CatalogStore keeps the catalog as a JSON array in one slot of a
// key-value store.
type CatalogStore struct {
	kv  domain.KeyValueStore
	key string
}

func NewCatalogStore(kv domain.KeyValueStore, key string) *CatalogStore {
	return &CatalogStore{kv: kv, key: key}
}

func (c *CatalogStore) Key() string {
	return c.key
}

// Load returns the stored catalog. An absent slot is an empty catalog. A slot
// that cannot be decoded yields an empty catalog and an error wrapping
// domain.ErrCorruptCatalog.
func (c *CatalogStore) Load() ([]domain.Repository, error) {
	raw, ok, err := c.kv.GetItem(c.key)
	if err != nil {
		if errors.Is(err, ErrCorruptStore) {
			return []domain.Repository{}, fmt.Errorf("%w: %v", domain.ErrCorruptCatalog, err)
		}
		return nil, fmt.Errorf("failed to read %s: %w", c.key, err)
	}

	if !ok {
		logger.Log("No stored catalog under %s, starting empty", c.key)
		return []domain.Repository{}, nil
	}

	var repos []domain.Repository
	if err := json.Unmarshal([]byte(raw), &repos); err != nil {
		logger.LogError("CATALOG_DECODE", c.key, err)
		return []domain.Repository{}, fmt.Errorf("%w: %v", domain.ErrCorruptCatalog, err)
	}

	if repos == nil {
		repos = []domain.Repository{}
	}

	logger.Log("Loaded %d repositories from %s", len(repos), c.key)
	return repos, nil
}

// Save overwrites the slot with the full catalog.
func (c *CatalogStore) Save(repos []domain.Repository) error {
	if repos == nil {
		repos = []domain.Repository{}
	}

	data, err := json.Marshal(repos)
	if err != nil {
		logger.LogError("CATALOG_ENCODE", c.key, err)
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := c.kv.SetItem(c.key, string(data)); err != nil {
		return err
	}

	logger.Log("Saved %d repositories to %s", len(repos), c.key)
	return nil
}
