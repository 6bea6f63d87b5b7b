package common

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseRepositoryIdentifier splits an "owner/name" identifier. Surrounding
// whitespace is ignored; anything other than two non-empty segments fails.
func ParseRepositoryIdentifier(identifier string) (owner, name string, err error) {
	trimmed := strings.TrimSpace(identifier)
	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: expected 'owner/name', got '%s'", ErrInvalidIdentifierFormat, trimmed)
	}

	owner = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])
	if owner == "" || name == "" {
		return "", "", fmt.Errorf("%w: owner and name must be non-empty", ErrInvalidIdentifierFormat)
	}

	return owner, name, nil
}

// RepositoryPath is the API path of a repository, each segment escaped.
func RepositoryPath(owner, name string) string {
	return fmt.Sprintf("repos/%s/%s", url.PathEscape(owner), url.PathEscape(name))
}

func FormatRepositoryIdentifier(owner, name string) string {
	return owner + "/" + name
}
