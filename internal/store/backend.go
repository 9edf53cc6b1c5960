// Package store persists named JSON documents and exposes collection
// semantics (ordered entities with store-assigned integer ids) on top of
// them. Storage engines are pluggable; all of them speak the same
// load/save-whole-document contract so the collection and settings layers
// never care where bytes actually live.
package store

import (
	"fmt"
	"path/filepath"
)

// Backend is a named-document byte store. Load reports ok=false when the
// document has never been saved; that is a valid state, not an error.
type Backend interface {
	Load(name string) (data []byte, ok bool, err error)
	Save(name string, data []byte) error
	Close() error
}

// Open creates a Backend by engine name.
//
// Supported engines:
//
//	"file"   - one <name>.json per document under dir (default)
//	"sqlite" - embedded SQLite database at dir/documents.db
//	"memory" - in-memory, ephemeral (tests)
func Open(engine, dir string) (Backend, error) {
	switch engine {
	case "file", "":
		return NewFileBackend(dir)
	case "sqlite":
		return NewSqliteBackend(filepath.Join(dir, "documents.db"))
	case "memory":
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (supported: file, sqlite, memory)", engine)
	}
}
