package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvxstudio/backend/app/routes"
	"github.com/dvxstudio/backend/app/services"
	"github.com/dvxstudio/backend/internal/auth"
	"github.com/dvxstudio/backend/internal/store"
	"github.com/dvxstudio/backend/pkg/middleware"
	"github.com/dvxstudio/backend/pkg/reqid"
	"github.com/dvxstudio/backend/pkg/router"
)

const adminSecret = "dvx_studio_admin_password_2025_secret39"

func newServer(t *testing.T) http.Handler {
	t.Helper()

	docs := store.NewDocumentStore(store.NewMemoryBackend())
	require.NoError(t, services.RegisterDefaults(docs))
	require.NoError(t, docs.Init())

	posts := services.NewPostService(docs)
	orders := services.NewOrderService(docs)

	r := router.New()
	r.Use(reqid.Middleware())
	r.Use(middleware.Recovery)

	routes.RegisterAPI(r, routes.Deps{
		Docs:     docs,
		Posts:    posts,
		Orders:   orders,
		Settings: services.NewSettingsService(docs),
		Stats:    services.NewStatsService(posts, orders),
		Gate:     auth.NewGate(adminSecret),
	})

	return r.Handler()
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded),
			"body: %s", rec.Body.String())
	}
	return rec, decoded
}

func TestHealth(t *testing.T) {
	h := newServer(t)

	rec, body := doJSON(t, h, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "DVX Studio API", body["service"])
}

func TestFreshStoreListsSeedPosts(t *testing.T) {
	h := newServer(t)

	rec, body := doJSON(t, h, http.MethodGet, "/api/posts", "")
	require.Equal(t, http.StatusOK, rec.Code)

	posts := body["posts"].([]any)
	require.Len(t, posts, 3)
	first := posts[0].(map[string]any)
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "Дизайн Discord сервера", first["title"])
}

func TestCreatePostThenFilterByCategory(t *testing.T) {
	h := newServer(t)

	rec, body := doJSON(t, h, http.MethodPost, "/api/admin/posts", `{"title":"X","category":"design"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Пост добавлен", body["message"])

	post := body["post"].(map[string]any)
	assert.Equal(t, float64(4), post["id"])
	assert.Equal(t, time.Now().Format("2006-01-02"), post["date"])

	rec, body = doJSON(t, h, http.MethodGet, "/api/posts?category=design", "")
	require.Equal(t, http.StatusOK, rec.Code)

	posts := body["posts"].([]any)
	require.Len(t, posts, 2)
	titles := []string{
		posts[0].(map[string]any)["title"].(string),
		posts[1].(map[string]any)["title"].(string),
	}
	assert.Equal(t, []string{"Дизайн Discord сервера", "X"}, titles)
}

func TestFilterUnknownCategoryIsEmptyList(t *testing.T) {
	h := newServer(t)

	rec, body := doJSON(t, h, http.MethodGet, "/api/posts?category=nothing", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, body["posts"].([]any))
}

func TestOrdersSequence(t *testing.T) {
	h := newServer(t)

	rec, body := doJSON(t, h, http.MethodPost, "/api/orders", `{"item":"A"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Заказ создан", body["message"])

	order := body["order"].(map[string]any)
	assert.Equal(t, float64(1), order["id"])
	assert.Equal(t, "new", order["status"])
	assert.Equal(t, "A", order["item"])

	rec, body = doJSON(t, h, http.MethodPost, "/api/orders", `{"item":"B"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	order = body["order"].(map[string]any)
	assert.Equal(t, float64(2), order["id"])
	assert.Equal(t, "new", order["status"])

	rec, body = doJSON(t, h, http.MethodGet, "/api/admin/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["orders"].([]any), 2)
}

func TestAuthRejectsWrongPassword(t *testing.T) {
	h := newServer(t)

	rec, body := doJSON(t, h, http.MethodGet, "/api/admin/auth?pass=wrong", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Неверный пароль", body["error"])
}

func TestAuthIssuesToken(t *testing.T) {
	h := newServer(t)

	rec, body := doJSON(t, h, http.MethodPost, "/api/admin/auth", `{"password":"`+adminSecret+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Авторизация успешна", body["message"])
	assert.True(t, strings.HasPrefix(body["token"].(string), "dvx_token_"))
}

func TestDeletePost(t *testing.T) {
	h := newServer(t)

	rec, body := doJSON(t, h, http.MethodDelete, "/api/admin/posts/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Пост удален", body["message"])

	rec, body = doJSON(t, h, http.MethodDelete, "/api/admin/posts/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Пост не найден", body["error"])

	rec, body = doJSON(t, h, http.MethodDelete, "/api/admin/posts/abc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Пост не найден", body["error"])
}

func TestSettingsShowAndReplace(t *testing.T) {
	h := newServer(t)

	rec, body := doJSON(t, h, http.MethodGet, "/api/admin/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DVX Studio", body["siteName"])
	assert.Equal(t, "https://discord.gg/example", body["discordLink"])

	rec, body = doJSON(t, h, http.MethodPost, "/api/admin/settings",
		`{"siteName":"New","siteDescription":"Desc"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Настройки сохранены", body["message"])

	rec, body = doJSON(t, h, http.MethodGet, "/api/admin/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "New", body["siteName"])
	// Wholesale replacement: the seeded links are gone.
	assert.NotContains(t, body, "discordLink")
}

func TestStats(t *testing.T) {
	h := newServer(t)

	_, _ = doJSON(t, h, http.MethodPost, "/api/orders", `{"item":"A"}`)

	rec, body := doJSON(t, h, http.MethodGet, "/api/admin/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), body["posts"])
	assert.Equal(t, float64(1), body["orders"])
}

func TestDataSnapshot(t *testing.T) {
	h := newServer(t)

	rec, body := doJSON(t, h, http.MethodGet, "/api/data", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "posts")
	assert.Contains(t, body, "orders")
	assert.Contains(t, body, "settings")
}

func TestUnknownRouteListsEndpoints(t *testing.T) {
	h := newServer(t)

	rec, body := doJSON(t, h, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Не найдено", body["error"])
	assert.Contains(t, body["message"], "/api/unknown")

	endpoints := body["availableEndpoints"].([]any)
	assert.Len(t, endpoints, 12)
	assert.Contains(t, endpoints, "GET /api/health")
	assert.Contains(t, endpoints, "DELETE /api/admin/posts/{id}")
}
