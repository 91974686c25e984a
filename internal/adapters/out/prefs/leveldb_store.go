// internal/adapters/out/prefs/leveldb_store.go
package prefs

import (
	"errors"
	"strings"

	"github.com/syndtr/goleveldb/leveldb"
)

// Keys persisted across console sessions.
const (
	keyRememberMe = "rememberMe"
	keyLastEmail  = "lastEmail"
)

// Store is a tiny local preference store for the operator console. Values
// survive restarts; a missing key reads as its zero value.
type Store struct {
	db *leveldb.DB
}

// Open opens (or creates) the preference database at dir.
func Open(dir string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("prefs: empty directory")
	}
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) get(key string) (string, error) {
	v, err := s.db.Get([]byte(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *Store) set(key, value string) error {
	return s.db.Put([]byte(key), []byte(value), nil)
}

func (s *Store) RememberMe() (bool, error) {
	v, err := s.get(keyRememberMe)
	return v == "true", err
}

// SetRememberMe stores the flag; turning it off also forgets the last email.
func (s *Store) SetRememberMe(on bool) error {
	v := "false"
	if on {
		v = "true"
	}
	if err := s.set(keyRememberMe, v); err != nil {
		return err
	}
	if !on {
		return s.db.Delete([]byte(keyLastEmail), nil)
	}
	return nil
}

func (s *Store) LastEmail() (string, error) {
	return s.get(keyLastEmail)
}

func (s *Store) SetLastEmail(email string) error {
	return s.set(keyLastEmail, strings.TrimSpace(email))
}
