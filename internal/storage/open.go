package storage

import (
	"fmt"

	"github.com/johanforsgren/gitcollection/internal/config"
	"github.com/johanforsgren/gitcollection/internal/domain"
)

// Open returns the key-value store selected by cfg.Backend.
func Open(cfg config.StorageConfig) (domain.KeyValueStore, error) {
	switch cfg.Backend {
	case config.BackendFile:
		s, err := NewLocalStorage(cfg.Dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendBolt:
		s, err := NewBoltStorage(cfg.Dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Backend)
	}
}
