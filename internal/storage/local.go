package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/johanforsgren/gitcollection/internal/logger"
)

const localFile = "storage.json"

var ErrCorruptStore = errors.New("storage file cannot be read")

// LocalStorage is a string key-value store kept in a single JSON file,
// rewritten in full on every SetItem. A file that cannot be read or parsed is
// kept on disk untouched and reported by GetItem until the next successful
// write.
type LocalStorage struct {
	path    string
	doc     *Document
	corrupt error
	mu      sync.RWMutex
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	s := &LocalStorage{
		path: filepath.Join(dir, localFile),
		doc:  &Document{Items: map[string]string{}},
	}

	if err := s.ensureDir(); err != nil {
		return nil, err
	}

	s.load()

	return s, nil
}

func (s *LocalStorage) ensureDir() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	return nil
}

func (s *LocalStorage) load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.LogError("LOAD", s.path, err)
			s.corrupt = fmt.Errorf("%w: %v", ErrCorruptStore, err)
		}
		return
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.LogError("UNMARSHAL", s.path, err)
		s.corrupt = fmt.Errorf("%w: %s: %v", ErrCorruptStore, s.path, err)
		return
	}
	if doc.Items == nil {
		doc.Items = map[string]string{}
	}
	s.doc = &doc

	logger.Log("Storage loaded from %s (%d slots)", s.path, len(doc.Items))
}

func (s *LocalStorage) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		logger.LogError("MARSHAL", s.path, err)
		return fmt.Errorf("failed to marshal storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		logger.LogError("SAVE", s.path, err)
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *LocalStorage) Path() string {
	return s.path
}

func (s *LocalStorage) GetItem(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logger.LogStorageRead(key)
	if s.corrupt != nil {
		return "", false, s.corrupt
	}
	value, ok := s.doc.Items[key]
	return value, ok, nil
}

func (s *LocalStorage) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.doc.Items[key]
	s.doc.Items[key] = value

	logger.LogStorageWrite(key)
	if err := s.save(); err != nil {
		if existed {
			s.doc.Items[key] = previous
		} else {
			delete(s.doc.Items, key)
		}
		return err
	}
	s.corrupt = nil

	return nil
}

func (s *LocalStorage) Close() error {
	return nil
}
