package controllers

import (
	"net/http"

	"github.com/dvxstudio/backend/app/services"
	"github.com/dvxstudio/backend/pkg/response"
)

type StatsController struct {
	stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{stats: stats}
}

// Show handles GET /api/admin/stats.
func (c *StatsController) Show(w http.ResponseWriter, r *http.Request) {
	snapshot, err := c.stats.Snapshot()
	if err != nil {
		fail(w, r, err)
		return
	}
	response.OK(w, snapshot)
}
