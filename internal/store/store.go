// Package store persists service credentials and delta cursors for the
// CLI in a local SQLite database. Credentials are sealed with the
// internal/crypto package; cursors are not secret and are kept in the
// clear.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fmcarvalho/ptcloud/internal/crypto"
)

// DBFileName is the store's file name, created beside the executable.
const DBFileName = "ptcloud.db"

// ErrNotFound is returned when no row exists for the requested service.
var ErrNotFound = errors.New("store: not found")

// Account is the credential set persisted per service.
type Account struct {
	Service        string `json:"service"`
	ConsumerKey    string `json:"consumer_key"`
	ConsumerSecret string `json:"consumer_secret"`
	AccessToken    string `json:"access_token"`
	AccessSecret   string `json:"access_secret"`
	Root           string `json:"root"`
}

// Store wraps the SQLite connection.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the store path beside the executable, falling back
// to the working directory.
func DefaultPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return DBFileName
	}
	return filepath.Join(filepath.Dir(execPath), DBFileName)
}

// Open opens (creating if needed) the store at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL
	);

	CREATE TABLE IF NOT EXISTS accounts (
		service TEXT PRIMARY KEY,
		sealed BLOB NOT NULL
	);

	CREATE TABLE IF NOT EXISTS cursors (
		service TEXT PRIMARY KEY,
		cursor TEXT NOT NULL
	);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Salt returns the KDF salt, generating and persisting one on first use.
func (s *Store) Salt() ([]byte, error) {
	var salt []byte
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'salt'`).Scan(&salt)
	switch {
	case err == nil:
		return salt, nil
	case errors.Is(err, sql.ErrNoRows):
		salt, err = crypto.GenerateSalt()
		if err != nil {
			return nil, err
		}
		if _, err := s.db.Exec(`INSERT INTO meta (key, value) VALUES ('salt', ?)`, salt); err != nil {
			return nil, fmt.Errorf("persisting salt: %w", err)
		}
		return salt, nil
	default:
		return nil, fmt.Errorf("reading salt: %w", err)
	}
}

// SaveAccount seals the account under key and upserts it.
func (s *Store) SaveAccount(key []byte, a Account) error {
	plaintext, err := json.Marshal(a)
	if err != nil {
		return err
	}
	sealed, err := crypto.Seal(key, plaintext)
	if err != nil {
		return fmt.Errorf("sealing account: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO accounts (service, sealed) VALUES (?, ?)
		 ON CONFLICT(service) DO UPDATE SET sealed = excluded.sealed`,
		a.Service, sealed)
	if err != nil {
		return fmt.Errorf("saving account: %w", err)
	}
	return nil
}

// Account unseals and returns the credentials stored for service.
func (s *Store) Account(key []byte, service string) (*Account, error) {
	var sealed []byte
	err := s.db.QueryRow(`SELECT sealed FROM accounts WHERE service = ?`, service).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading account: %w", err)
	}
	plaintext, err := crypto.Open(key, sealed)
	if err != nil {
		return nil, err
	}
	var a Account
	if err := json.Unmarshal(plaintext, &a); err != nil {
		return nil, fmt.Errorf("decoding account: %w", err)
	}
	return &a, nil
}

// DeleteAccount removes the stored credentials for service.
func (s *Store) DeleteAccount(service string) error {
	_, err := s.db.Exec(`DELETE FROM accounts WHERE service = ?`, service)
	return err
}

// SaveCursor upserts the delta cursor for service.
func (s *Store) SaveCursor(service, cursor string) error {
	_, err := s.db.Exec(
		`INSERT INTO cursors (service, cursor) VALUES (?, ?)
		 ON CONFLICT(service) DO UPDATE SET cursor = excluded.cursor`,
		service, cursor)
	if err != nil {
		return fmt.Errorf("saving cursor: %w", err)
	}
	return nil
}

// Cursor returns the stored delta cursor for service, or "" when none has
// been saved yet.
func (s *Store) Cursor(service string) (string, error) {
	var cursor string
	err := s.db.QueryRow(`SELECT cursor FROM cursors WHERE service = ?`, service).Scan(&cursor)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading cursor: %w", err)
	}
	return cursor, nil
}
