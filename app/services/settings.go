package services

import (
	"encoding/json"

	"github.com/dvxstudio/backend/app/models"
	"github.com/dvxstudio/backend/internal/store"
)

// SettingsService manages the singleton settings document.
type SettingsService struct {
	docs *store.DocumentStore
}

func NewSettingsService(docs *store.DocumentStore) *SettingsService {
	return &SettingsService{docs: docs}
}

// Get returns the persisted settings. When nothing has ever been persisted
// it falls back to a minimal two-field document — deliberately smaller than
// the first-boot DefaultSettings, and not written back.
func (s *SettingsService) Get() (models.Settings, error) {
	raw, ok, err := s.docs.LoadRaw(SettingsDocument)
	if err != nil {
		return models.Settings{}, err
	}
	if !ok {
		return models.Settings{
			SiteName:        "DVX Studio",
			SiteDescription: "Креативные решения для ваших проектов",
		}, nil
	}

	var settings models.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return models.Settings{}, &store.StorageError{Op: "load", Name: SettingsDocument, Err: err}
	}
	return settings, nil
}

// Replace persists settings verbatim as the whole document. No field-level
// validation, no merging with the previous document.
func (s *SettingsService) Replace(settings models.Settings) error {
	return s.docs.Save(SettingsDocument, settings)
}
