// Package catalog holds the operations on the saved repository list that are
// shared by the terminal UI and the command line.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/johanforsgren/gitcollection/internal/domain"
	"github.com/johanforsgren/gitcollection/internal/logger"
)

type Service struct {
	store  domain.CatalogRepository
	lookup domain.RepositoryLookup
}

func NewService(store domain.CatalogRepository, lookup domain.RepositoryLookup) *Service {
	return &Service{store: store, lookup: lookup}
}

// Load returns the stored catalog. When the stored value is corrupt the
// returned catalog is empty and the error wraps domain.ErrCorruptCatalog;
// callers may warn and keep going.
func (s *Service) Load() ([]domain.Repository, error) {
	repos, err := s.store.Load()
	if err != nil {
		if errors.Is(err, domain.ErrCorruptCatalog) {
			logger.LogWarning("Discarding corrupt catalog: %v", err)
			return []domain.Repository{}, err
		}
		return nil, err
	}
	return repos, nil
}

// Lookup resolves a draft identifier. A blank draft never reaches the
// lookup service.
func (s *Service) Lookup(ctx context.Context, draft string) (domain.Repository, error) {
	identifier := strings.TrimSpace(draft)
	if identifier == "" {
		return domain.Repository{}, domain.ErrEmptyIdentifier
	}

	repo, err := s.lookup.LookupRepository(ctx, identifier)
	if err != nil {
		return domain.Repository{}, err
	}
	if repo == nil {
		return domain.Repository{}, fmt.Errorf("lookup of %s returned no repository", identifier)
	}

	return *repo, nil
}

func (s *Service) Save(repos []domain.Repository) error {
	return s.store.Save(repos)
}

// Append returns a new catalog with repo at the end. repos is not modified.
func Append(repos []domain.Repository, repo domain.Repository) []domain.Repository {
	next := make([]domain.Repository, len(repos), len(repos)+1)
	copy(next, repos)
	return append(next, repo)
}

// Add looks up identifier, appends it to the stored catalog and saves the
// result. A corrupt stored catalog is replaced.
func (s *Service) Add(ctx context.Context, identifier string) (domain.Repository, []domain.Repository, error) {
	repos, err := s.Load()
	if err != nil && !errors.Is(err, domain.ErrCorruptCatalog) {
		return domain.Repository{}, nil, err
	}

	repo, err := s.Lookup(ctx, identifier)
	if err != nil {
		return domain.Repository{}, repos, err
	}

	next := Append(repos, repo)
	if err := s.Save(next); err != nil {
		return repo, next, fmt.Errorf("repository found but catalog not saved: %w", err)
	}

	return repo, next, nil
}
