package keystore

import (
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/chacha20poly1305"
)

// Store is the durable client-side storage: a small sqlite database under
// the app directory holding the bearer token, the cached user profile and
// the push permission state. Secret values are sealed with a key kept in a
// 0600 file next to the database.
type Store struct {
	db   *sql.DB
	aead [32]byte
}

const keyFile = "store.key"

var ErrNotFound = errors.New("keystore: key not found")

func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, "client.db"))
	if err != nil {
		return nil, fmt.Errorf("open client db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS keyvalue (
		name  TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		sealed INTEGER NOT NULL DEFAULT 0
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init keyvalue table: %w", err)
	}

	s := &Store{db: db}
	if err := s.loadOrCreateKey(filepath.Join(dir, keyFile)); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) loadOrCreateKey(path string) error {
	key, err := os.ReadFile(path)
	if err == nil && len(key) == chacha20poly1305.KeySize {
		copy(s.aead[:], key)
		return nil
	}

	key = make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("generate storage key: %w", err)
	}
	if err := os.WriteFile(path, key, 0600); err != nil {
		return fmt.Errorf("write storage key: %w", err)
	}
	copy(s.aead[:], key)
	return nil
}

// A nil *Store behaves like empty storage: reads miss, writes are
// dropped. Callers treat unavailable storage as "no prior session".

// Set stores a plaintext value.
func (s *Store) Set(name string, value []byte) error {
	if s == nil {
		return nil
	}
	return s.put(name, value, false)
}

// SetSecret seals the value before storing it.
func (s *Store) SetSecret(name string, value []byte) error {
	if s == nil {
		return nil
	}
	sealed, err := s.seal(value)
	if err != nil {
		return err
	}
	return s.put(name, sealed, true)
}

func (s *Store) put(name string, value []byte, sealed bool) error {
	_, err := s.db.Exec(
		`INSERT INTO keyvalue (name, value, sealed) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, sealed = excluded.sealed`,
		name, value, sealed,
	)
	if err != nil {
		return fmt.Errorf("keystore put %s: %w", name, err)
	}
	return nil
}

// Get returns the stored value, unsealing it when needed.
func (s *Store) Get(name string) ([]byte, error) {
	if s == nil {
		return nil, ErrNotFound
	}
	var value []byte
	var sealed bool
	err := s.db.QueryRow(
		"SELECT value, sealed FROM keyvalue WHERE name = ?", name,
	).Scan(&value, &sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("keystore get %s: %w", name, err)
	}

	if sealed {
		return s.open(value)
	}
	return value, nil
}

func (s *Store) Delete(name string) error {
	if s == nil {
		return nil
	}
	if _, err := s.db.Exec("DELETE FROM keyvalue WHERE name = ?", name); err != nil {
		return fmt.Errorf("keystore delete %s: %w", name, err)
	}
	return nil
}

func (s *Store) seal(plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.aead[:])
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("seal nonce: %w", err)
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (s *Store) open(sealed []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.aead[:])
	if err != nil {
		return nil, err
	}
	if len(sealed) < aead.NonceSize() {
		return nil, errors.New("keystore: sealed value too short")
	}
	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("unseal value: %w", err)
	}
	return plaintext, nil
}
