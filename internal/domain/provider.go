package domain

import "context"

// RepositoryLookup resolves an owner/name identifier to a descriptor.
type RepositoryLookup interface {
	LookupRepository(ctx context.Context, identifier string) (*Repository, error)
}
