package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/johanforsgren/gitcollection/internal/logger"
	"go.etcd.io/bbolt"
)

const (
	boltFile   = "gitcollection.bolt"
	boltBucket = "storage"
)

// BoltStorage keeps slot values in a single bbolt bucket.
type BoltStorage struct {
	db   *bbolt.DB
	path string
}

func NewBoltStorage(dir string) (*BoltStorage, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return OpenBolt(filepath.Join(dir, boltFile))
}

// OpenBolt opens or creates the database at path.
func OpenBolt(path string) (*BoltStorage, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		logger.LogError("BOLT_OPEN", path, err)
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	}); err != nil {
		_ = db.Close()

		return nil, err
	}

	logger.Log("Bolt storage opened at %s", path)
	return &BoltStorage{db: db, path: path}, nil
}

func (b *BoltStorage) Path() string {
	return b.path
}

func (b *BoltStorage) GetItem(key string) (string, bool, error) {
	var (
		value string
		found bool
	)

	logger.LogStorageRead(key)
	err := b.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(boltBucket)).Get([]byte(key))
		if data != nil {
			value = string(data)
			found = true
		}

		return nil
	})
	if err != nil {
		logger.LogError("BOLT_GET", key, err)
		return "", false, err
	}

	return value, found, nil
}

func (b *BoltStorage) SetItem(key, value string) error {
	logger.LogStorageWrite(key)
	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put([]byte(key), []byte(value))
	})
	if err != nil {
		logger.LogError("BOLT_PUT", key, err)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	return nil
}

func (b *BoltStorage) Close() error {
	return b.db.Close()
}
