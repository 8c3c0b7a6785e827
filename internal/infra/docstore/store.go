// Package docstore provides a file-based implementation of DocumentStore.
// Each document is a flat JSON file named exactly as its key (a date like
// 01-02-2021 for daily lists, a weekday name for templates).
package docstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
)

// Store implements domain.DocumentStore on a single directory.
type Store struct {
	dir      string
	lockPath string
}

// New creates a Store rooted at dir. The directory does not need to
// exist; it is created on first access.
func New(dir string) *Store {
	return &Store{
		dir:      dir,
		lockPath: filepath.Join(dir, ".lock"),
	}
}

// Read returns the list stored under key.
func (s *Store) Read(key string) (domain.TaskList, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(lock)

	return s.read(key)
}

// Write overwrites the document under key in full and returns the list
// for call chaining.
func (s *Store) Write(key string, list domain.TaskList) (domain.TaskList, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(lock)

	if err := s.write(key, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Exists reports whether a document exists under key.
func (s *Store) Exists(key string) bool {
	if validateKey(key) != nil {
		return false
	}
	_, err := os.Stat(s.path(key))
	return err == nil
}

// Update applies fn to the stored list and writes the result back. The
// exclusive lock is held across the whole read-transform-write, so two
// overlapping updates on the same store serialize instead of clobbering
// each other. When fn returns an error nothing is written.
func (s *Store) Update(key string, fn func(domain.TaskList) (domain.TaskList, error)) (domain.TaskList, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(lock)

	list, err := s.read(key)
	if err != nil {
		return nil, err
	}
	next, err := fn(list)
	if err != nil {
		return nil, err
	}
	if err := s.write(key, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}

func (s *Store) read(key string) (domain.TaskList, error) {
	content, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, key)
		}
		return nil, fmt.Errorf("read document %s: %w", key, err)
	}

	var list domain.TaskList
	if err := json.Unmarshal(content, &list); err != nil {
		return nil, fmt.Errorf("parse document %s: %w: %v", key, domain.ErrCorruptDocument, err)
	}
	return list, nil
}

func (s *Store) write(key string, list domain.TaskList) error {
	if list == nil {
		list = domain.TaskList{} // an empty document is "[]", never "null"
	}
	content, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", key, err)
	}

	// Write to a temp file first, then rename for atomicity.
	path := s.path(key)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// validateKey rejects keys that would escape the data directory or
// collide with the store's own bookkeeping files.
func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, "/\\") || strings.HasPrefix(key, ".") {
		return fmt.Errorf("invalid document key %q", key)
	}
	return nil
}

// Ensure Store implements DocumentStore.
var _ domain.DocumentStore = (*Store)(nil)
