package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/CrestNiraj12/hn/domain"
)

// listingKey names the entry that holds the ranked listing.
const listingKey = "story_ids"

// FileStore keeps named JSON values in a single file on disk. It
// implements app.ListingStore.
type FileStore struct {
	path string
	log  zerolog.Logger
}

// NewFileStore creates a store backed by the file at path. The file and
// its directory are created on first save.
func NewFileStore(path string, logger zerolog.Logger) *FileStore {
	return &FileStore{path: path, log: logger}
}

// Path returns the file the store reads and writes.
func (s *FileStore) Path() string { return s.path }

// SaveListing replaces the stored listing.
func (s *FileStore) SaveListing(l domain.Listing) error {
	entries, err := s.read()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Warn().Err(err).Str("path", s.path).Msg("discarding unreadable store")
	}
	if entries == nil {
		entries = make(map[string]json.RawMessage)
	}

	raw, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("encoding listing: %w", err)
	}
	entries[listingKey] = raw

	if err := s.write(entries); err != nil {
		return err
	}
	s.log.Debug().Str("path", s.path).Str("category", string(l.Category)).Int("stories", len(l.IDs)).Msg("listing saved")
	return nil
}

// LoadListing returns the stored listing.
func (s *FileStore) LoadListing() (domain.Listing, error) {
	entries, err := s.read()
	if errors.Is(err, os.ErrNotExist) {
		return domain.Listing{}, &domain.NotFoundError{What: "listing", Err: domain.ErrNoListing}
	}
	if err != nil {
		return domain.Listing{}, err
	}

	raw, ok := entries[listingKey]
	if !ok {
		return domain.Listing{}, &domain.NotFoundError{What: "listing", Err: domain.ErrNoListing}
	}
	var l domain.Listing
	if err := json.Unmarshal(raw, &l); err != nil {
		return domain.Listing{}, fmt.Errorf("parsing listing in %s: %w", s.path, err)
	}

	s.log.Debug().Str("path", s.path).Str("category", string(l.Category)).Time("saved_at", l.SavedAt).Msg("listing loaded")
	return l, nil
}

func (s *FileStore) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing store %s: %w", s.path, err)
	}
	return entries, nil
}

// write replaces the file atomically.
func (s *FileStore) write(entries map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("writing store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing store: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}
