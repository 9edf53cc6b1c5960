package controllers

import (
	"net/http"
	"time"

	"github.com/dvxstudio/backend/pkg/response"
)

const (
	ServiceName = "DVX Studio API"
	Version     = "1.0.0"
)

type HealthController struct {
	started time.Time
}

func NewHealthController() *HealthController {
	return &HealthController{started: time.Now()}
}

// Health is the liveness probe.
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]any{
		"status":    "ok",
		"service":   ServiceName,
		"version":   Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(c.started).Seconds(),
	})
}
