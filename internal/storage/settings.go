package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

var (
	_ core.KeyValueStore = (*Store)(nil)
	_ core.MaxStore      = (*Store)(nil)
)

// Get returns the setting stored under key.
// The boolean is false when the key has never been written.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %q: %w", key, err)
	}
	return value, true, nil
}

// Set writes value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %q: %w", key, err)
	}
	return nil
}

// SetMax writes value under key only if it is greater than the stored
// integer, in a single statement. It returns the value left in the slot.
func (s *Store) SetMax(key string, value int) (int, error) {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
		 WHERE CAST(excluded.value AS INTEGER) > CAST(settings.value AS INTEGER)`,
		key, strconv.Itoa(value),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot raise setting %q: %w", key, err)
	}

	raw, _, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	stored, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("storage: setting %q is not an integer: %w", key, err)
	}
	return stored, nil
}

// DeleteSetting removes key. Deleting a missing key is not an error.
func (s *Store) DeleteSetting(key string) error {
	if _, err := s.db.Exec("DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete setting %q: %w", key, err)
	}
	return nil
}
