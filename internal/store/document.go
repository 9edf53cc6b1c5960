package store

import (
	"encoding/json"
	"sync"
)

// DocumentStore loads and saves whole JSON documents through a Backend and
// materializes registered defaults the first time a missing document is
// touched. Defaults are registered once at startup (Init), never ambiently.
type DocumentStore struct {
	backend  Backend
	mu       sync.Mutex
	defaults map[string][]byte
}

func NewDocumentStore(backend Backend) *DocumentStore {
	return &DocumentStore{
		backend:  backend,
		defaults: make(map[string][]byte),
	}
}

// RegisterDefault records the document written when name has never been
// persisted. Call before Init.
func (s *DocumentStore) RegisterDefault(name string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return storageErr("save", name, err)
	}

	s.mu.Lock()
	s.defaults[name] = data
	s.mu.Unlock()
	return nil
}

// Init persists every registered default whose document is still absent.
// Run once at startup before any request is served.
func (s *DocumentStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, data := range s.defaults {
		_, ok, err := s.backend.Load(name)
		if err != nil {
			return storageErr("load", name, err)
		}
		if ok {
			continue
		}
		if err := s.backend.Save(name, data); err != nil {
			return storageErr("save", name, err)
		}
	}
	return nil
}

// LoadRaw returns the persisted bytes of a document without applying any
// default. ok=false means nothing has ever been saved under name.
func (s *DocumentStore) LoadRaw(name string) ([]byte, bool, error) {
	data, ok, err := s.backend.Load(name)
	if err != nil {
		return nil, false, storageErr("load", name, err)
	}
	return data, ok, nil
}

// Load decodes the named document into out. A missing document with a
// registered default is materialized (persisted, then decoded) so every
// later load observes the same content. A malformed persisted document
// surfaces as a *StorageError.
func (s *DocumentStore) Load(name string, out any) error {
	data, ok, err := s.backend.Load(name)
	if err != nil {
		return storageErr("load", name, err)
	}

	if !ok {
		s.mu.Lock()
		def, has := s.defaults[name]
		s.mu.Unlock()
		if !has {
			return ErrNotFound
		}
		if err := s.backend.Save(name, def); err != nil {
			return storageErr("save", name, err)
		}
		data = def
	}

	if err := json.Unmarshal(data, out); err != nil {
		return storageErr("load", name, err)
	}
	return nil
}

// Save serializes doc as the entire content of the named document,
// replacing whatever was there before.
func (s *DocumentStore) Save(name string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return storageErr("save", name, err)
	}
	if err := s.backend.Save(name, data); err != nil {
		return storageErr("save", name, err)
	}
	return nil
}
