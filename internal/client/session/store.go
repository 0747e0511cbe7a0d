package session

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// TokenStore persists the credential token across runs. It is the only
// client-side state that outlives the process.
type TokenStore interface {
	// Load returns the stored token, or "" when none is stored.
	Load() (string, error)
	Save(token string) error
	Clear() error
}

var (
	bucketSession = []byte("session")
	keyToken      = []byte("token")
)

// BoltStore keeps the token in a single-file bbolt database, the terminal
// analog of the browser's durable key-value store.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBoltStore opens (or creates) the token database at path.
func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open token db: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create session bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Load() (string, error) {
	var token string
	err := s.db.View(func(tx *bbolt.Tx) error {
		token = string(tx.Bucket(bucketSession).Get(keyToken))
		return nil
	})
	return token, err
}

func (s *BoltStore) Save(token string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSession).Put(keyToken, []byte(token))
	})
}

func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSession).Delete(keyToken)
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

// MemStore is an in-memory TokenStore for tests.
type MemStore struct {
	Token string
}

func (s *MemStore) Load() (string, error)      { return s.Token, nil }
func (s *MemStore) Save(token string) error    { s.Token = token; return nil }
func (s *MemStore) Clear() error               { s.Token = ""; return nil }
