// Package store persists the library as JSON files in a data directory, one
// file per collection. Writes go through a temp file and rename so a crash
// never leaves a half-written collection, and a flock-guarded lock file
// keeps a second server instance from interleaving writes.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/fretstudio/api/internal/library"
	"github.com/fretstudio/api/internal/model"
)

const (
	scalesFile     = "scales.json"
	chordTypesFile = "chord_types.json"
	tuningsFile    = "tunings.json"
	voicingsFile   = "voicings.json"
	lockFile       = ".fretstudio.lock"
)

// FileStore implements library.Persister over a directory of JSON files.
type FileStore struct {
	dir  string
	lock *flock.Flock
}

// Open prepares the data directory and takes the instance lock. It fails if
// another process already holds the directory.
func Open(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	lock := flock.New(filepath.Join(dir, lockFile))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock data dir: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("data dir %s is locked by another process", dir)
	}
	return &FileStore{dir: dir, lock: lock}, nil
}

// Close releases the instance lock.
func (s *FileStore) Close() error {
	return s.lock.Unlock()
}

// LoadState reads every collection. Missing files load as empty collections
// so a fresh directory is usable immediately.
func (s *FileStore) LoadState() (library.State, error) {
	var st library.State
	if err := s.readJSON(scalesFile, &st.Scales); err != nil {
		return st, err
	}
	if err := s.readJSON(chordTypesFile, &st.ChordTypes); err != nil {
		return st, err
	}
	if err := s.readJSON(tuningsFile, &st.Tunings); err != nil {
		return st, err
	}
	if err := s.readJSON(voicingsFile, &st.Voicings); err != nil {
		return st, err
	}
	if st.Voicings == nil {
		st.Voicings = model.VoicingTree{}
	}
	return st, nil
}

func (s *FileStore) SaveScales(scales []model.Scale) error {
	return s.writeJSON(scalesFile, scales)
}

func (s *FileStore) SaveChordTypes(chordTypes []model.ChordType) error {
	return s.writeJSON(chordTypesFile, chordTypes)
}

func (s *FileStore) SaveTunings(tunings []model.Tuning) error {
	return s.writeJSON(tuningsFile, tunings)
}

func (s *FileStore) SaveVoicings(tree model.VoicingTree) error {
	return s.writeJSON(voicingsFile, tree)
}

func (s *FileStore) readJSON(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// writeJSON overwrites a collection atomically: marshal, write to a temp
// file in the same directory, then rename over the target.
func (s *FileStore) writeJSON(name string, in any) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmpPath, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
