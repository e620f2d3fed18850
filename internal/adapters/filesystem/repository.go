package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"

	"tracklist/internal/domain"
	"tracklist/internal/ports"
)

var (
	_ ports.DesignRepository = (*Repository)(nil)
	_ ports.PreviewRenderer  = (*Repository)(nil)
	_ ports.DesignManager    = (*Repository)(nil)
)

// ErrOutsideDesignDirs is returned for paths that are not managed design files.
var ErrOutsideDesignDirs = errors.New("path is not a design file in a design directory")

// Repository implements ports.DesignRepository over design directories
type Repository struct {
	dirs     []string
	patterns []glob.Glob
	log      logrus.FieldLogger
}

// NewRepository creates a repository over dirs. Files are matched by base
// name against patterns (gobwas/glob syntax); nil means DefaultPatterns.
func NewRepository(dirs, patterns []string, log logrus.FieldLogger) (*Repository, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	r := &Repository{log: log}
	for _, dir := range dirs {
		r.dirs = append(r.dirs, ExpandHome(dir))
	}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid design pattern %q: %w", p, err)
		}
		r.patterns = append(r.patterns, g)
	}
	return r, nil
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}

// Dirs returns the design directories
func (r *Repository) Dirs() []string {
	return slices.Clone(r.dirs)
}

// Match reports whether the base name of path is a design file name
func (r *Repository) Match(path string) bool {
	base := filepath.Base(path)
	for _, g := range r.patterns {
		if g.Match(base) {
			return true
		}
	}
	return false
}

// Walk calls fn for every design file in every design directory.
// Directories that do not exist are skipped.
func (r *Repository) Walk(fn func(path string, info fs.FileInfo) error) error {
	for _, dir := range r.dirs {
		if err := r.WalkDir(dir, fn); err != nil {
			return err
		}
	}
	return nil
}

// WalkDir calls fn for every design file under dir. A missing dir is not
// an error.
func (r *Repository) WalkDir(dir string, fn func(path string, info fs.FileInfo) error) error {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == dir {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() || !r.Match(path) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return fn(path, info)
	})
	if err != nil && !errors.Is(err, filepath.SkipDir) {
		return fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	return nil
}

// ReadHeader returns the ride type and vehicle stored in a design file
func (r *Repository) ReadHeader(path string) (domain.RideType, string, error) {
	data, err := readDesignFile(path)
	if err != nil {
		return 0, "", err
	}
	h, err := parseHeader(data)
	if err != nil {
		return 0, "", err
	}
	return domain.RideType(h.RideType), h.Vehicle, nil
}

// ListDesigns returns the designs for a ride selection, ordered by name.
// Files whose header cannot be read are skipped.
func (r *Repository) ListDesigns(sel domain.RideSelection) ([]domain.DesignRef, error) {
	var refs []domain.DesignRef

	err := r.Walk(func(path string, _ fs.FileInfo) error {
		rideType, vehicle, err := r.ReadHeader(path)
		if err != nil {
			r.log.WithError(err).WithField("path", path).Warn("skipping unreadable design")
			return nil
		}
		if !Matches(sel, rideType, vehicle) {
			return nil
		}
		refs = append(refs, domain.DesignRef{Name: DesignName(path), Path: path})
		return nil
	})
	if err != nil {
		return nil, err
	}

	domain.SortRefs(refs)
	return refs, nil
}

// Matches reports whether a design header belongs to a ride selection.
// An empty selection vehicle matches every vehicle.
func Matches(sel domain.RideSelection, rideType domain.RideType, vehicle string) bool {
	if rideType != sel.Type {
		return false
	}
	return sel.Vehicle == "" || strings.EqualFold(sel.Vehicle, vehicle)
}

// LoadDesign parses a design file. Paths that are not managed design files
// are reported as not existing.
func (r *Repository) LoadDesign(path string) (*domain.Design, error) {
	if !r.Manages(path) {
		return nil, fmt.Errorf("%w: %w", ErrOutsideDesignDirs, fs.ErrNotExist)
	}
	data, err := readDesignFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read design: %w", err)
	}
	return decodeDesign(DesignName(path), data)
}

// SaveDesign writes d to path, compressing when path ends in .gz
func (r *Repository) SaveDesign(path string, d *domain.Design) error {
	data, err := encodeDesign(d)
	if err != nil {
		return fmt.Errorf("failed to encode design: %w", err)
	}
	if err := writeDesignFile(path, data); err != nil {
		return fmt.Errorf("failed to write design: %w", err)
	}
	return nil
}

// Rename gives a design file a new name, keeping its directory and suffix
func (r *Repository) Rename(path, newName string) (domain.DesignRef, error) {
	if err := r.checkManaged(path); err != nil {
		return domain.DesignRef{}, err
	}
	newName = strings.TrimSpace(newName)
	if !domain.FilenameValid(newName) {
		return domain.DesignRef{}, fmt.Errorf("invalid design name: %q", newName)
	}

	newPath := filepath.Join(filepath.Dir(path), newName+designSuffix(path))
	if newPath == path {
		return domain.DesignRef{Name: newName, Path: path}, nil
	}
	if _, err := os.Stat(newPath); err == nil {
		return domain.DesignRef{}, fmt.Errorf("design already exists: %s", newName)
	}

	if err := os.Rename(path, newPath); err != nil {
		return domain.DesignRef{}, fmt.Errorf("failed to rename design: %w", err)
	}

	r.log.WithFields(logrus.Fields{"from": path, "to": newPath}).Info("design renamed")
	return domain.DesignRef{Name: newName, Path: newPath}, nil
}

// Delete removes a design file
func (r *Repository) Delete(path string) error {
	if err := r.checkManaged(path); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete design: %w", err)
	}
	r.log.WithField("path", path).Info("design deleted")
	return nil
}

// Manages reports whether path matches a design pattern and lies below one
// of the design directories.
func (r *Repository) Manages(path string) bool {
	if !r.Match(path) {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, dir := range r.dirs {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(absDir, abs)
		if err == nil && rel != "." && !escapes(rel) {
			return true
		}
	}
	return false
}

func escapes(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// checkManaged rejects paths that are not managed design files, or that do
// not exist.
func (r *Repository) checkManaged(path string) error {
	if !r.Manages(path) {
		return fmt.Errorf("%w: %s", ErrOutsideDesignDirs, path)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("design not found: %w", err)
	}
	return nil
}
