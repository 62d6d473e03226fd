package storage

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
)

const probeKey = ".matchbook-probe"

// FileStore is a directory-backed Adapter: one file per key, with a
// quota on the total bytes stored across all keys.
type FileStore struct {
	dir   string
	quota int64

	probeOnce sync.Once
	usable    bool
}

// NewFileStore creates a store rooted at dir with the given byte quota.
// The directory is created lazily by the first Probe.
func NewFileStore(dir string, quota int64) *FileStore {
	return &FileStore{dir: dir, quota: quota}
}

// Probe checks that the directory can be created and written. The
// result is cached: the store is probed once per process, not per write.
func (f *FileStore) Probe() bool {
	f.probeOnce.Do(func() {
		f.usable = f.probe() == nil
	})
	return f.usable
}

func (f *FileStore) probe() error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	marker := filepath.Join(f.dir, probeKey)
	if err := os.WriteFile(marker, []byte("ok"), 0o644); err != nil {
		return err
	}
	return os.Remove(marker)
}

// Read returns the stored value for key, or absent when no file exists.
func (f *FileStore) Read(key string) (string, bool, error) {
	if !f.Probe() {
		return "", false, fmt.Errorf("read %q: %w", key, ErrUnavailable)
	}
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %q: %w", key, ErrUnavailable)
	}
	return string(data), true, nil
}

// Write stores value under key atomically: the value lands in a temp
// file first and is renamed over the old one, so a failed write never
// clobbers the previous value.
func (f *FileStore) Write(key, value string) error {
	if !f.Probe() {
		return fmt.Errorf("write %q: %w", key, ErrUnavailable)
	}

	used, err := f.usedExcept(key)
	if err != nil {
		return fmt.Errorf("write %q: %w", key, ErrUnavailable)
	}
	if used+int64(len(value)) > f.quota {
		return fmt.Errorf("write %q (%d bytes, %d free): %w",
			key, len(value), f.quota-used, ErrQuotaExceeded)
	}

	tmp, err := os.CreateTemp(f.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("write %q: %w", key, ErrUnavailable)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %q: %w", key, ErrUnavailable)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %q: %w", key, ErrUnavailable)
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %q: %w", key, ErrUnavailable)
	}
	return nil
}

// Remove deletes key; absent keys are fine.
func (f *FileStore) Remove(key string) error {
	if !f.Probe() {
		return fmt.Errorf("remove %q: %w", key, ErrUnavailable)
	}
	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %q: %w", key, ErrUnavailable)
	}
	return nil
}

func (f *FileStore) path(key string) string {
	// Keys may contain separators; escape to a flat filename.
	return filepath.Join(f.dir, url.PathEscape(key))
}

// usedExcept sums the stored bytes of every key other than the one
// about to be replaced.
func (f *FileStore) usedExcept(key string) (int64, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return 0, err
	}
	self := url.PathEscape(key)
	var used int64
	for _, e := range entries {
		if e.IsDir() || e.Name() == self {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		used += info.Size()
	}
	return used, nil
}
