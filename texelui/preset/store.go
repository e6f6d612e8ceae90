// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/preset/store.go
// Summary: SQLite-backed named preset storage.

package preset

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/framegrace/texelpane/config"
)

// ErrNotFound is returned for unknown preset names.
var ErrNotFound = errors.New("preset: not found")

const storeSchema = `
CREATE TABLE IF NOT EXISTS presets (
    name TEXT PRIMARY KEY,
    updated INTEGER NOT NULL          -- UnixNano
);

CREATE TABLE IF NOT EXISTS preset_values (
    preset TEXT NOT NULL,
    key TEXT NOT NULL,
    value TEXT NOT NULL,
    PRIMARY KEY (preset, key)
);
`

// Store keeps named presets in a SQLite database.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens or creates the store at path. An empty path uses
// config.PresetDBPath.
func Open(path string) (*Store, error) {
	if path == "" {
		p, err := config.PresetDBPath()
		if err != nil {
			return nil, errors.Wrap(err, "preset: resolve path")
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, "preset: create directory")
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(2000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "preset: open database")
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "preset: connect")
	}
	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "preset: create schema")
	}
	return &Store{db: db}, nil
}

// Save stores preset under name, replacing any previous content.
func (s *Store) Save(name string, preset Preset) error {
	if name == "" {
		return errors.New("preset: empty name")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "preset: begin")
	}
	defer tx.Rollback()

	if _, err := tx.Exec("INSERT OR REPLACE INTO presets (name, updated) VALUES (?, ?)", name, time.Now().UnixNano()); err != nil {
		return errors.Wrapf(err, "preset: save %s", name)
	}
	if _, err := tx.Exec("DELETE FROM preset_values WHERE preset = ?", name); err != nil {
		return errors.Wrapf(err, "preset: clear %s", name)
	}
	stmt, err := tx.Prepare("INSERT INTO preset_values (preset, key, value) VALUES (?, ?, ?)")
	if err != nil {
		return errors.Wrap(err, "preset: prepare")
	}
	defer stmt.Close()
	for k, v := range preset {
		if _, err := stmt.Exec(name, k, v); err != nil {
			return errors.Wrapf(err, "preset: save %s.%s", name, k)
		}
	}
	return tx.Commit()
}

// Load returns the preset stored under name.
func (s *Store) Load(name string) (Preset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.exists(name); err != nil {
		return nil, err
	}
	rows, err := s.db.Query("SELECT key, value FROM preset_values WHERE preset = ?", name)
	if err != nil {
		return nil, errors.Wrapf(err, "preset: load %s", name)
	}
	defer rows.Close()

	out := make(Preset)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, errors.Wrapf(err, "preset: load %s", name)
		}
		out[k] = v
	}
	return out, rows.Err()
}

// List returns every stored name in alphabetical order.
func (s *Store) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT name FROM presets ORDER BY name")
	if err != nil {
		return nil, errors.Wrap(err, "preset: list")
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, errors.Wrap(err, "preset: list")
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// Delete removes the preset stored under name.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "preset: begin")
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM presets WHERE name = ?", name)
	if err != nil {
		return errors.Wrapf(err, "preset: delete %s", name)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.Wrap(ErrNotFound, name)
	}
	if _, err := tx.Exec("DELETE FROM preset_values WHERE preset = ?", name); err != nil {
		return errors.Wrapf(err, "preset: delete %s", name)
	}
	return tx.Commit()
}

// Close closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

func (s *Store) exists(name string) error {
	var n int
	err := s.db.QueryRow("SELECT 1 FROM presets WHERE name = ?", name).Scan(&n)
	if err == sql.ErrNoRows {
		return errors.Wrap(ErrNotFound, name)
	}
	if err != nil {
		return errors.Wrapf(err, "preset: lookup %s", name)
	}
	return nil
}
