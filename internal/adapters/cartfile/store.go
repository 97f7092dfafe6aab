// Package cartfile implements durable cart snapshot storage on the local
// file system.
package cartfile

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/shopfront/internal/core/domain"
	"go.trai.ch/shopfront/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SnapshotStore = (*Store)(nil)

// Store implements ports.SnapshotStore using a file-per-profile strategy.
// Each profile maps to a hash-named JSON file under the cart directory, so
// arbitrary profile names never leak into the file system namespace.
type Store struct {
	dir string
}

// NewStore creates a new snapshot store backed by the directory at the
// given path. The directory is created lazily on the first write.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = domain.DefaultCartPath()
	}
	return &Store{dir: dir}
}

// Load reads the snapshot for the given profile. A missing snapshot is an
// empty cart, not an error.
func (s *Store) Load(_ context.Context, profile string) ([]domain.CartLine, error) {
	filename := s.filename(profile)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error())
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrSnapshotDecodeFailed.Error()),
			"file", filename,
		)
	}

	return lines, nil
}

// Save atomically replaces the snapshot for the given profile. The data is
// written to a temporary file first and moved into place with a rename, so
// a crash mid-write never leaves a torn snapshot behind.
func (s *Store) Save(_ context.Context, profile string, lines []domain.CartLine) error {
	data, err := json.MarshalIndent(lines, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrSnapshotEncodeFailed.Error())
	}

	filename := s.filename(profile)
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	tmp, err := os.CreateTemp(dir, "snapshot-*.tmp")
	if err != nil {
		return zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error())
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error())
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error())
	}

	if err := os.Rename(tmpName, filename); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error())
	}

	return nil
}

func (s *Store) filename(profile string) string {
	if profile == "" {
		profile = domain.DefaultCartProfile
	}
	hash := xxhash.Sum64String(profile)
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(hash >> (56 - 8*i))
	}
	return filepath.Join(s.dir, hex.EncodeToString(buf[:])+".json")
}
