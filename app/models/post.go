// Package models holds the persisted entity types.
package models

// Post is one portfolio entry. ID and Date are assigned by the store on
// creation; every other field comes from the caller as-is.
type Post struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Content     string   `json:"content,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}
