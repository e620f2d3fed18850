package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"tracklist/internal/domain"
	"tracklist/internal/ports"
)

const schemaVersion = "1"

// Scanner enumerates design files and reads their headers.
// filesystem.Repository implements it.
type Scanner interface {
	WalkDir(dir string, fn func(path string, info fs.FileInfo) error) error
	ReadHeader(path string) (domain.RideType, string, error)
}

// Index implements ports.DesignIndex using SQLite
type Index struct {
	db      *sql.DB
	dbPath  string
	dirs    []string
	scanner Scanner
	log     logrus.FieldLogger
}

// Ensure Index implements DesignIndex
var _ ports.DesignIndex = (*Index)(nil)

// NewIndex creates a new SQLite index that scans with scanner
func NewIndex(scanner Scanner, log logrus.FieldLogger) *Index {
	return &Index{scanner: scanner, log: log}
}

// Open initializes the index database at dbPath for the given design dirs
func (idx *Index) Open(dbPath string, dirs []string) error {
	dbPath = expandHome(dbPath)
	idx.dbPath = dbPath
	idx.dirs = slices.Clone(dirs)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS designs (
			path      TEXT PRIMARY KEY,
			name      TEXT NOT NULL,
			ride_type INTEGER NOT NULL,
			vehicle   TEXT NOT NULL DEFAULT '',
			mtime     INTEGER NOT NULL,
			checksum  TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_designs_ride ON designs(ride_type, vehicle);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}
	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// NeedsFullRebuild reports whether the schema or the set of design
// directories changed since the last full sync.
func (idx *Index) NeedsFullRebuild() bool {
	var version, dirsHash string
	idx.db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	idx.db.QueryRow(`SELECT value FROM meta WHERE key = 'dirs_hash'`).Scan(&dirsHash)

	return version != schemaVersion || dirsHash != hashDirs(idx.dirs)
}

// hashDirs returns a short order-independent hash of the design dirs
func hashDirs(dirs []string) string {
	sorted := slices.Clone(dirs)
	slices.Sort(sorted)
	h := sha256.Sum256([]byte(strings.Join(sorted, "\x00")))
	return hex.EncodeToString(h[:8])
}

// updateMeta records the schema version, dirs hash and sync time
func (idx *Index) updateMeta(syncTime int64) error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('dirs_hash', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?);
	`, schemaVersion, hashDirs(idx.dirs), syncTime)
	return err
}

// GetEntry retrieves an entry by path. It returns nil, nil when the path is
// not indexed.
func (idx *Index) GetEntry(path string) (*domain.IndexEntry, error) {
	var e domain.IndexEntry
	err := idx.db.QueryRow(`
		SELECT path, name, ride_type, vehicle, mtime, checksum
		FROM designs WHERE path = ?
	`, path).Scan(&e.Path, &e.Name, &e.RideType, &e.Vehicle, &e.Mtime, &e.Checksum)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListEntries returns the entries for a ride selection. An empty selection
// vehicle matches every vehicle.
func (idx *Index) ListEntries(sel domain.RideSelection) ([]domain.IndexEntry, error) {
	rows, err := idx.db.Query(`
		SELECT path, name, ride_type, vehicle, mtime, checksum
		FROM designs
		WHERE ride_type = ? AND (? = '' OR vehicle = ? COLLATE NOCASE)
		ORDER BY name, path
	`, int(sel.Type), sel.Vehicle, sel.Vehicle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.IndexEntry
	for rows.Next() {
		var e domain.IndexEntry
		if err := rows.Scan(&e.Path, &e.Name, &e.RideType, &e.Vehicle, &e.Mtime, &e.Checksum); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// BeginTx starts a new transaction
func (idx *Index) BeginTx() (ports.IndexTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &indexTx{tx: tx}, nil
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
