package sqlite

import (
	"io/fs"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"tracklist/internal/adapters/filesystem"
	"tracklist/internal/checksum"
	"tracklist/internal/domain"
)

type scanState int

const (
	stateUnchanged scanState = iota
	stateTouched             // mtime changed, contents did not
	stateChanged
	stateNew
)

type scanned struct {
	entry domain.IndexEntry
	state scanState
}

// SyncFull performs a complete rebuild of the index
func (idx *Index) SyncFull() (*domain.SyncStats, error) {
	start := time.Now()

	files, err := idx.scan(nil)
	if err != nil {
		return nil, err
	}

	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM designs`); err != nil {
		return nil, err
	}
	t := &indexTx{tx: tx}
	for i := range files {
		if err := t.UpsertEntry(&files[i].entry); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	if err := idx.updateMeta(time.Now().Unix()); err != nil {
		return nil, err
	}

	stats := &domain.SyncStats{
		EntriesAdded: len(files),
		FilesScanned: len(files),
		Duration:     time.Since(start),
	}
	idx.log.WithField("count", stats.EntriesAdded).Debug("index rebuilt")
	return stats, nil
}

// SyncIncremental re-reads only files whose mtime changed, and drops
// entries whose files are gone.
func (idx *Index) SyncIncremental() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	known, err := idx.allEntries()
	if err != nil {
		return nil, err
	}

	files, err := idx.scan(known)
	if err != nil {
		return nil, err
	}

	tx, err := idx.BeginTx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	seen := make(map[string]bool, len(files))
	for i := range files {
		f := &files[i]
		seen[f.entry.Path] = true
		stats.FilesScanned++

		switch f.state {
		case stateUnchanged:
			continue
		case stateNew:
			stats.EntriesAdded++
		case stateChanged:
			stats.EntriesUpdated++
		}
		if err := tx.UpsertEntry(&f.entry); err != nil {
			return nil, err
		}
	}

	for path := range known {
		if !seen[path] {
			if err := tx.DeleteEntry(path); err != nil {
				return nil, err
			}
			stats.EntriesDeleted++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	if err := idx.updateMeta(time.Now().Unix()); err != nil {
		return nil, err
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// scan walks every design dir in parallel. Files found in known with the
// same mtime are not read again. Files whose header cannot be read are
// left out.
func (idx *Index) scan(known map[string]domain.IndexEntry) ([]scanned, error) {
	var (
		mu    sync.Mutex
		out   []scanned
		dedup = make(map[string]bool)
	)

	var g errgroup.Group
	for _, dir := range idx.dirs {
		dir := expandHome(dir)
		g.Go(func() error {
			var found []scanned
			err := idx.scanner.WalkDir(dir, func(path string, info fs.FileInfo) error {
				if s, ok := idx.scanFile(path, info, known); ok {
					found = append(found, s)
				}
				return nil
			})
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			for _, s := range found {
				if !dedup[s.entry.Path] {
					dedup[s.entry.Path] = true
					out = append(out, s)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (idx *Index) scanFile(path string, info fs.FileInfo, known map[string]domain.IndexEntry) (scanned, bool) {
	mtime := info.ModTime().UnixNano()
	prev, ok := known[path]
	if ok && prev.Mtime == mtime {
		return scanned{entry: prev, state: stateUnchanged}, true
	}

	sum, err := checksum.File(path)
	if err != nil {
		idx.log.WithError(err).WithField("path", path).Warn("skipping unreadable design")
		return scanned{}, false
	}
	if ok && prev.Checksum == sum {
		prev.Mtime = mtime
		return scanned{entry: prev, state: stateTouched}, true
	}

	rideType, vehicle, err := idx.scanner.ReadHeader(path)
	if err != nil {
		idx.log.WithError(err).WithField("path", path).Warn("skipping unreadable design")
		return scanned{}, false
	}

	state := stateNew
	if ok {
		state = stateChanged
	}
	return scanned{
		entry: domain.IndexEntry{
			Path:     path,
			Name:     filesystem.DesignName(path),
			RideType: rideType,
			Vehicle:  vehicle,
			Mtime:    mtime,
			Checksum: sum,
		},
		state: state,
	}, true
}

func (idx *Index) allEntries() (map[string]domain.IndexEntry, error) {
	rows, err := idx.db.Query(`SELECT path, name, ride_type, vehicle, mtime, checksum FROM designs`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make(map[string]domain.IndexEntry)
	for rows.Next() {
		var e domain.IndexEntry
		if err := rows.Scan(&e.Path, &e.Name, &e.RideType, &e.Vehicle, &e.Mtime, &e.Checksum); err != nil {
			return nil, err
		}
		entries[e.Path] = e
	}
	return entries, rows.Err()
}
