package blob

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"syscall"
)

// FileStore keeps each key in its own file under a directory.
// Writes go through a temp file and rename, guarded by a lock file, so a
// crashed write never clobbers the previous blob.
type FileStore struct {
	dir string
}

var keySanitizer = regexp.MustCompile(`[^a-z0-9-]+`)

// NewFileStore creates a file-backed store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) keyPath(key string) string {
	name := keySanitizer.ReplaceAllString(key, "-")
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) lockPath() string {
	return filepath.Join(s.dir, "store.lock")
}

// Get returns the blob stored under key.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.keyPath(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read blob %s: %w", key, err)
	}
	return data, true, nil
}

// Set replaces the blob stored under key.
func (s *FileStore) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	return s.withLock(func() error {
		path := s.keyPath(key)

		tmpFile, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp")
		if err != nil {
			return fmt.Errorf("create temp blob file: %w", err)
		}
		name := tmpFile.Name()
		_, err = tmpFile.Write(value)
		if err1 := tmpFile.Close(); err1 != nil && err == nil {
			err = err1
		}
		if err != nil {
			os.Remove(name)
			return fmt.Errorf("write temp blob file: %w", err)
		}

		if err := os.Rename(name, path); err != nil {
			os.Remove(name)
			return fmt.Errorf("rename blob file: %w", err)
		}
		return nil
	})
}

// Close is a no-op for the file backend.
func (s *FileStore) Close() error {
	return nil
}

// withLock executes fn while holding an exclusive lock on the store's
// lock file.
func (s *FileStore) withLock(fn func() error) error {
	lockFile, err := os.OpenFile(s.lockPath(), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	return fn()
}
