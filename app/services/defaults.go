// Package services implements the application operations on top of the
// document store: post and order collections, the settings singleton, and
// runtime stats.
package services

import (
	"github.com/dvxstudio/backend/app/models"
	"github.com/dvxstudio/backend/internal/store"
)

// Document names. Collection documents are shaped {"<name>": [...]}.
const (
	PostsDocument    = "posts"
	OrdersDocument   = "orders"
	SettingsDocument = "settings"
)

func floatPtr(f float64) *float64 { return &f }

// SeedPosts is the content a fresh install starts with.
func SeedPosts() []models.Post {
	return []models.Post{
		{
			ID:          1,
			Title:       "Дизайн Discord сервера",
			Description: "Полный редизайн с кастомными эмодзи",
			Category:    "design",
			Type:        "image",
			Date:        "2025-01-20",
		},
		{
			ID:          2,
			Title:       "Windows Optimizer",
			Description: "Программа для оптимизации Windows 10/11",
			Category:    "windows",
			Type:        "software",
			Price:       floatPtr(0),
			Date:        "2025-01-15",
		},
		{
			ID:          3,
			Title:       "Juniper Setup Guide",
			Description: "Как настроить Juniper Bot за 5 минут",
			Category:    "juniper",
			Type:        "video",
			Content:     "https://www.youtube.com/embed/dQw4w9WgXcQ",
			Date:        "2025-01-10",
		},
	}
}

// DefaultSettings is the full settings document written at first boot.
// Note it is a superset of the fallback SettingsService.Get returns when the
// document is missing; both shapes are part of the contract.
func DefaultSettings() models.Settings {
	return models.Settings{
		SiteName:        "DVX Studio",
		SiteDescription: "Креативные решения для ваших проектов",
		DiscordLink:     "https://discord.gg/example",
		YoutubeLink:     "https://youtube.com/@zoliryzik",
	}
}

// RegisterDefaults records the first-boot document set on docs. Pure
// configuration: nothing is persisted until docs.Init runs.
func RegisterDefaults(docs *store.DocumentStore) error {
	if err := docs.RegisterDefault(PostsDocument, map[string][]models.Post{
		PostsDocument: SeedPosts(),
	}); err != nil {
		return err
	}
	if err := docs.RegisterDefault(OrdersDocument, map[string][]models.Order{
		OrdersDocument: {},
	}); err != nil {
		return err
	}
	return docs.RegisterDefault(SettingsDocument, DefaultSettings())
}
