package common

import (
	"errors"
	"strings"
)

var (
	ErrInvalidIdentifierFormat = errors.New("invalid repository identifier format")
	ErrRepositoryNotFound      = errors.New("repository not found")
)

// ExtractErrorMessage returns the Message field of a GitHub API error string,
// or the whole error text when there is none.
func ExtractErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	text := err.Error()
	idx := strings.Index(text, "Message:")
	if idx == -1 {
		return text
	}

	msg := text[idx+len("Message:"):]
	if end := strings.IndexAny(msg, "}]"); end != -1 {
		msg = msg[:end]
	}

	msg = strings.TrimSpace(msg)
	if msg == "" {
		return text
	}
	return msg
}
