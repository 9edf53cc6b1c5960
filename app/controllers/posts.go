package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dvxstudio/backend/app/models"
	"github.com/dvxstudio/backend/app/services"
	"github.com/dvxstudio/backend/internal/store"
	"github.com/dvxstudio/backend/pkg/bind"
	"github.com/dvxstudio/backend/pkg/response"
)

type PostsController struct {
	posts *services.PostService
}

func NewPostsController(posts *services.PostService) *PostsController {
	return &PostsController{posts: posts}
}

// List handles GET /api/posts with an optional ?category= filter.
func (c *PostsController) List(w http.ResponseWriter, r *http.Request) {
	posts, err := c.posts.List(r.URL.Query().Get("category"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.OK(w, map[string]any{"posts": posts})
}

// Create handles POST /api/admin/posts. Id and date in the payload are
// ignored; the store assigns both.
func (c *PostsController) Create(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if err := bind.JSON(r, &post); err != nil {
		response.Err(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := c.posts.Create(post)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.OK(w, map[string]any{
		"success": true,
		"message": "Пост добавлен",
		"post":    created,
	})
}

// Delete handles DELETE /api/admin/posts/{id}. A non-numeric or unknown id
// is a 404, matching the remove-by-id contract.
func (c *PostsController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusNotFound, "Пост не найден")
		return
	}

	if err := c.posts.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Err(w, http.StatusNotFound, "Пост не найден")
			return
		}
		fail(w, r, err)
		return
	}

	response.OK(w, map[string]any{
		"success": true,
		"message": "Пост удален",
	})
}
