package services

import (
	"time"

	"github.com/dvxstudio/backend/app/models"
	"github.com/dvxstudio/backend/internal/store"
)

// PostService exposes the posts collection: list with optional category
// filter, create with store-assigned id and date, delete by id.
type PostService struct {
	col *store.Collection[models.Post]
}

func NewPostService(docs *store.DocumentStore) *PostService {
	col := store.NewCollection(docs, PostsDocument,
		func(p models.Post) int { return p.ID },
		func(p models.Post, id int) models.Post {
			p.ID = id
			p.Date = time.Now().Format("2006-01-02")
			return p
		},
	)
	return &PostService{col: col}
}

// List returns all posts, or only those in category when it is non-empty,
// in stored order. An unknown category yields an empty list, not an error.
func (s *PostService) List(category string) ([]models.Post, error) {
	if category == "" {
		return s.col.List(nil)
	}
	return s.col.List(func(p models.Post) bool { return p.Category == category })
}

// Create appends a post. Any id or date supplied by the caller is replaced
// by the store-assigned values.
func (s *PostService) Create(p models.Post) (models.Post, error) {
	return s.col.Append(p)
}

// Delete removes the post with the given id. Returns store.ErrNotFound when
// no post carries it.
func (s *PostService) Delete(id int) error {
	removed, err := s.col.RemoveByID(id)
	if err != nil {
		return err
	}
	if !removed {
		return store.ErrNotFound
	}
	return nil
}

// Count reports how many posts exist.
func (s *PostService) Count() (int, error) {
	return s.col.Len()
}
