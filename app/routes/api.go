// Package routes wires controllers onto the router.
package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dvxstudio/backend/app/controllers"
	"github.com/dvxstudio/backend/app/services"
	"github.com/dvxstudio/backend/internal/auth"
	"github.com/dvxstudio/backend/internal/store"
	"github.com/dvxstudio/backend/pkg/metrics"
	"github.com/dvxstudio/backend/pkg/middleware"
	"github.com/dvxstudio/backend/pkg/response"
	"github.com/dvxstudio/backend/pkg/router"
)

// Deps carries everything the API needs, built once during bootstrap.
type Deps struct {
	Docs     *store.DocumentStore
	Posts    *services.PostService
	Orders   *services.OrderService
	Settings *services.SettingsService
	Stats    *services.StatsService
	Gate     *auth.Gate
}

// RegisterAPI mounts every endpoint. Unmatched paths get a 404 that lists
// the available endpoints, built from the router's own registry.
func RegisterAPI(r *router.Router, deps Deps) {
	healthCtl := controllers.NewHealthController()
	dataCtl := controllers.NewDataController(deps.Docs)
	postsCtl := controllers.NewPostsController(deps.Posts)
	ordersCtl := controllers.NewOrdersController(deps.Orders)
	settingsCtl := controllers.NewSettingsController(deps.Settings)
	authCtl := controllers.NewAuthController(deps.Gate)
	statsCtl := controllers.NewStatsController(deps.Stats)

	authLimit := middleware.RateLimit(10, time.Minute)

	api := r.Group("/api")
	api.Get("/health", "health", healthCtl.Health)
	api.Get("/data", "data", dataCtl.Show)
	api.Get("/posts", "posts.list", postsCtl.List)
	api.Post("/orders", "orders.create", ordersCtl.Create)

	admin := api.Group("/admin")
	admin.Get("/auth", "auth.check", authCtl.Authenticate, authLimit)
	admin.Post("/auth", "auth.login", authCtl.Authenticate, authLimit)
	admin.Get("/orders", "orders.list", ordersCtl.List)
	admin.Get("/settings", "settings.show", settingsCtl.Show)
	admin.Post("/settings", "settings.update", settingsCtl.Update)
	admin.Post("/posts", "posts.create", postsCtl.Create)
	admin.Delete("/posts/{id}", "posts.delete", postsCtl.Delete)
	admin.Get("/stats", "stats", statsCtl.Show)

	// Unnamed on purpose: scrape endpoint, not part of the public surface.
	r.Get("/metrics", "", metrics.Handler())

	r.NotFound(notFound(r))
}

func notFound(r *router.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		response.JSON(w, http.StatusNotFound, map[string]any{
			"error":              "Не найдено",
			"message":            fmt.Sprintf("Путь %s не существует", req.URL.Path),
			"availableEndpoints": r.Routes(),
		})
	}
}
