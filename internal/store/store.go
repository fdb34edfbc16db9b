// Package store persists field mappings on disk and exports normalized rate
// data to SQLite for the host application.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fretemap/fretemap-cli/internal/discovery"
	"github.com/fretemap/fretemap-cli/internal/utils"
)

// ErrMappingNotFound reports an unknown mapping id.
var ErrMappingNotFound = errors.New("mapping not found")

// Record is one persisted field mapping with its bookkeeping.
type Record struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Mapping   discovery.FieldMapping `json:"mapping"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// Store keeps one JSON file per mapping under a data directory.
type Store struct {
	dir string
}

// Open prepares a store rooted at dir, creating it if needed.
func Open(dir string) (*Store, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save persists a new mapping under a fresh id.
func (s *Store) Save(name string, m discovery.FieldMapping) (*Record, error) {
	now := time.Now().UTC()
	rec := &Record{
		ID:        uuid.NewString(),
		Name:      name,
		Mapping:   m,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.write(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update rewrites an existing record, bumping UpdatedAt.
func (s *Store) Update(rec *Record) error {
	if _, err := s.Load(rec.ID); err != nil {
		return err
	}
	rec.UpdatedAt = time.Now().UTC()
	return s.write(rec)
}

// Load reads one record by id.
func (s *Store) Load(id string) (*Record, error) {
	b, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMappingNotFound, id)
		}
		return nil, fmt.Errorf("read mapping: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("decode mapping %s: %w", id, err)
	}
	return &rec, nil
}

// List returns all records, newest first.
func (s *Store) List() ([]*Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list store dir: %w", err)
	}
	var out []*Record
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		rec, err := s.Load(strings.TrimSuffix(e.Name(), ".json"))
		if err != nil {
			continue // skip unreadable strays
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Delete removes one record by id.
func (s *Store) Delete(id string) error {
	err := os.Remove(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrMappingNotFound, id)
	}
	return err
}

// Import validates an external mapping-config file against the persisted
// configuration schema and saves it under a new id. Hand-authored files are
// the norm here, so a clear validation error beats a partial import.
func (s *Store) Import(name, path string) (*Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping file: %w", err)
	}
	m, err := ValidateMappingConfig(b)
	if err != nil {
		return nil, err
	}
	return s.Save(name, m)
}

func (s *Store) write(rec *Record) error {
	b, err := utils.PrettyJSON(rec)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(s.path(rec.ID), b)
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}
