package sqlite

import (
	"database/sql"

	"tracklist/internal/domain"
	"tracklist/internal/ports"
)

// indexTx implements ports.IndexTx
type indexTx struct {
	tx *sql.Tx
}

// Ensure indexTx implements IndexTx
var _ ports.IndexTx = (*indexTx)(nil)

// UpsertEntry inserts or replaces an entry
func (t *indexTx) UpsertEntry(e *domain.IndexEntry) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO designs (path, name, ride_type, vehicle, mtime, checksum)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.Path, e.Name, int(e.RideType), e.Vehicle, e.Mtime, e.Checksum)
	return err
}

// DeleteEntry removes an entry by path
func (t *indexTx) DeleteEntry(path string) error {
	_, err := t.tx.Exec(`DELETE FROM designs WHERE path = ?`, path)
	return err
}

// RenameEntry moves an entry to a new path and name
func (t *indexTx) RenameEntry(oldPath, newPath, newName string) error {
	_, err := t.tx.Exec(`UPDATE designs SET path = ?, name = ? WHERE path = ?`, newPath, newName, oldPath)
	return err
}

// Commit commits the transaction
func (t *indexTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *indexTx) Rollback() error {
	return t.tx.Rollback()
}
