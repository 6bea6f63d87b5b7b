package domain

type KeyValueStore interface {
	GetItem(key string) (string, bool, error)

	SetItem(key, value string) error

	Close() error
}

type CatalogRepository interface {
	Load() ([]Repository, error)

	Save(repos []Repository) error
}
