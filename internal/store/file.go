package store

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileBackend keeps each document as a pretty-printed JSON file under dir.
// Writes go to a temp file in the same directory and are renamed into place,
// so a failed save never truncates the previous content. A per-document
// advisory lock guards against another process mutating the same file.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

func (b *FileBackend) lock(name string) *flock.Flock {
	return flock.New(b.path(name) + ".lock")
}

func (b *FileBackend) Load(name string) ([]byte, bool, error) {
	lock := b.lock(name)
	if err := lock.RLock(); err != nil {
		return nil, false, err
	}
	defer lock.Unlock() //nolint:errcheck

	data, err := os.ReadFile(b.path(name))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (b *FileBackend) Save(name string, data []byte) error {
	lock := b.lock(name)
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock() //nolint:errcheck

	tmp, err := os.CreateTemp(b.dir, name+".*.tmp")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), b.path(name)); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

func (b *FileBackend) Close() error { return nil }
