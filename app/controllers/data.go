package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/dvxstudio/backend/app/services"
	"github.com/dvxstudio/backend/internal/store"
	"github.com/dvxstudio/backend/pkg/response"
)

// DataController serves the aggregate debug snapshot of every document.
type DataController struct {
	docs *store.DocumentStore
}

func NewDataController(docs *store.DocumentStore) *DataController {
	return &DataController{docs: docs}
}

// Show handles GET /api/data: the raw content of each persisted document,
// keyed by document name. Documents that do not exist yet are omitted.
func (c *DataController) Show(w http.ResponseWriter, r *http.Request) {
	names := []string{services.PostsDocument, services.OrdersDocument, services.SettingsDocument}

	data := make(map[string]json.RawMessage, len(names))
	for _, name := range names {
		raw, ok, err := c.docs.LoadRaw(name)
		if err != nil {
			fail(w, r, err)
			return
		}
		if ok {
			data[name] = raw
		}
	}

	response.OK(w, data)
}
