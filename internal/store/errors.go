package store

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a named entity or document does not exist.
var ErrNotFound = errors.New("not found")

// StorageError wraps an underlying storage read/write failure. The original
// message is preserved so the HTTP layer can pass it through.
type StorageError struct {
	Op   string // "load" or "save"
	Name string // document name
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s document %q: %v", e.Op, e.Name, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op, name string, err error) error {
	return &StorageError{Op: op, Name: name, Err: err}
}
