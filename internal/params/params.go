// Package params is the key-value store the panel reads liveness data from.
// Keys are stored one per file in a directory, the layout other processes on
// the device already use, so writers need no coordination beyond an atomic
// rename.
package params

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/rileyhilliard/sidebar/internal/errors"
	"github.com/rileyhilliard/sidebar/internal/logger"
)

// KeyLastAthenaPingTime holds the boot-relative time, in nanoseconds, of the
// last successful round trip to the backend.
const KeyLastAthenaPingTime = "LastAthenaPingTime"

// DefaultDir is where the device keeps its params.
const DefaultDir = "/data/params/d"

// Reader looks up a numeric value. ok is false when the key is absent or
// unreadable.
type Reader interface {
	Get(key string) (value float64, ok bool)
}

// FileStore is a Reader backed by a directory of one-value files.
type FileStore struct {
	dir string
	log logger.Logger
}

// NewFileStore returns a store rooted at dir.
func NewFileStore(dir string, log logger.Logger) *FileStore {
	if log == nil {
		log = logger.Noop()
	}
	return &FileStore{dir: dir, log: log}
}

// Dir returns the store's directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Get reads key. A missing file is the normal "absent" case; a file that does
// not parse is logged and also reported as absent.
func (s *FileStore) Get(key string) (float64, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("read %s: %v", key, err)
		}
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		s.log.Warn("param %s is not numeric: %q", key, string(data))
		return 0, false
	}
	return v, true
}

// Put writes key atomically.
func (s *FileStore) Put(key string, value float64) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrParams,
			"Cannot create params directory "+s.dir,
			"Check params.dir in your config and its permissions")
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+".tmp")
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrParams,
			fmt.Sprintf("Cannot write %s", key),
			"Check params.dir permissions")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.FormatFloat(value, 'f', -1, 64)); err != nil {
		tmp.Close()
		return errors.WrapWithCode(err, errors.ErrParams, fmt.Sprintf("Cannot write %s", key), "")
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapWithCode(err, errors.ErrParams, fmt.Sprintf("Cannot write %s", key), "")
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, key)); err != nil {
		return errors.WrapWithCode(err, errors.ErrParams, fmt.Sprintf("Cannot write %s", key), "")
	}
	s.log.Debug("put %s=%v", key, value)
	return nil
}

// MemStore is an in-memory Reader for tests and demos.
type MemStore struct {
	mu     sync.RWMutex
	values map[string]float64
}

// NewMemStore returns an empty store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]float64)}
}

// Get returns the value for key.
func (s *MemStore) Get(key string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key.
func (s *MemStore) Set(key string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Delete removes key.
func (s *MemStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}
