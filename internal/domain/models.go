package domain

import "errors"

const routePrefix = "/repositories/"

var (
	ErrEmptyIdentifier = errors.New("empty repository identifier")
	ErrCorruptCatalog  = errors.New("stored catalog is corrupt")
)

type Owner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// Repository is the descriptor of a GitHub repository as shown in the
// catalog and written to storage. Values are never mutated once fetched.
type Repository struct {
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Owner       Owner  `json:"owner"`
}

// Route is the detail route for the repository.
func (r Repository) Route() string {
	return routePrefix + r.FullName
}
