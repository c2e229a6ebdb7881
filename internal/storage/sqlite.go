// Package storage provides SQLite-based persistence for generated worlds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// World snapshots are stored as zstd-compressed JSON blobs, one row per world.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/hextide/internal/world"
)

// Store manages the SQLite database connection for world persistence.
type Store struct {
	db *sql.DB
}

// WorldEntry describes a stored world without its cell payload.
type WorldEntry struct {
	ID        int64
	Name      string
	Generator string
	Cells     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS worlds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			generator TEXT NOT NULL,
			cells INTEGER NOT NULL,
			data BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_worlds_updated ON worlds(updated_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveWorld stores a world under the given name, replacing any previous
// version. Returns the ID of the stored row.
func (s *Store) SaveWorld(name, generator string, g *world.Grid) (int64, error) {
	raw, err := g.EncodeJSON()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode world %s: %w", name, err)
	}

	blob, err := compressSnapshot(raw)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot compress world %s: %w", name, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO worlds (name, generator, cells, data) VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		     generator = excluded.generator,
		     cells = excluded.cells,
		     data = excluded.data,
		     updated_at = CURRENT_TIMESTAMP`,
		name, generator, g.Len(), blob,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save world %s: %w", name, err)
	}

	// LastInsertId is unreliable on the upsert's update path, so read the ID back.
	var id int64
	if err := s.db.QueryRow("SELECT id FROM worlds WHERE name = ?", name).Scan(&id); err != nil {
		return 0, fmt.Errorf("storage: cannot get stored ID: %w", err)
	}

	return id, nil
}

// LoadWorld retrieves a world by name.
// Returns (nil, nil) if no world with that name exists.
func (s *Store) LoadWorld(name string) (*world.Grid, error) {
	var blob []byte
	err := s.db.QueryRow("SELECT data FROM worlds WHERE name = ?", name).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query world %s: %w", name, err)
	}

	raw, err := decompressSnapshot(blob)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot decompress world %s: %w", name, err)
	}

	g, err := world.DecodeJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("storage: world %s is corrupted: %w", name, err)
	}

	return g, nil
}

// WorldByName retrieves a stored world's metadata by name.
// Returns (nil, nil) if no world with that name exists.
func (s *Store) WorldByName(name string) (*WorldEntry, error) {
	var e WorldEntry
	var createdAt, updatedAt any

	err := s.db.QueryRow(
		`SELECT id, name, generator, cells, created_at, updated_at
		 FROM worlds
		 WHERE name = ?`,
		name,
	).Scan(&e.ID, &e.Name, &e.Generator, &e.Cells, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query world %s: %w", name, err)
	}

	e.CreatedAt = parseTimestamp(createdAt)
	e.UpdatedAt = parseTimestamp(updatedAt)

	return &e, nil
}

// ListWorlds retrieves metadata for all stored worlds, most recently
// updated first.
func (s *Store) ListWorlds() ([]WorldEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, generator, cells, created_at, updated_at
		 FROM worlds
		 ORDER BY updated_at DESC, name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query worlds: %w", err)
	}
	defer rows.Close()

	var entries []WorldEntry
	for rows.Next() {
		var e WorldEntry
		var createdAt, updatedAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Generator, &e.Cells, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		e.UpdatedAt = parseTimestamp(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteWorld removes a stored world by name.
// Returns true if a world was actually deleted.
func (s *Store) DeleteWorld(name string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM worlds WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete world %s: %w", name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot read delete result: %w", err)
	}

	return n > 0, nil
}

// compressSnapshot compresses snapshot JSON for storage.
func compressSnapshot(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

// decompressSnapshot reverses compressSnapshot.
func decompressSnapshot(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

// parseTimestamp converts a scanned created_at/updated_at value.
// The sqlite driver may hand back either time.Time or a string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
