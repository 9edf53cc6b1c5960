package controllers

import (
	"net/http"

	"github.com/dvxstudio/backend/app/models"
	"github.com/dvxstudio/backend/app/services"
	"github.com/dvxstudio/backend/pkg/bind"
	"github.com/dvxstudio/backend/pkg/response"
)

type SettingsController struct {
	settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{settings: settings}
}

// Show handles GET /api/admin/settings.
func (c *SettingsController) Show(w http.ResponseWriter, r *http.Request) {
	settings, err := c.settings.Get()
	if err != nil {
		fail(w, r, err)
		return
	}
	response.OK(w, settings)
}

// Update handles POST /api/admin/settings: the body replaces the whole
// settings document.
func (c *SettingsController) Update(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := bind.JSON(r, &settings); err != nil {
		response.Err(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := c.settings.Replace(settings); err != nil {
		fail(w, r, err)
		return
	}

	response.OK(w, map[string]any{
		"success": true,
		"message": "Настройки сохранены",
	})
}
