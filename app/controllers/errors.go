// Package controllers translates HTTP requests into service calls and
// service results into JSON responses.
package controllers

import (
	"errors"
	"net/http"

	"github.com/dvxstudio/backend/internal/store"
	"github.com/dvxstudio/backend/pkg/logger"
	"github.com/dvxstudio/backend/pkg/response"
)

// fail maps a service error to its status code. Storage failures pass the
// underlying message through; everything unexpected is a 500 too.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	var storageErr *store.StorageError

	switch {
	case errors.Is(err, store.ErrNotFound):
		response.Err(w, http.StatusNotFound, "Не найдено")
	case errors.As(err, &storageErr):
		logger.WithCtx(r.Context()).Error("storage failure",
			"op", storageErr.Op, "document", storageErr.Name, "error", storageErr.Err)
		response.Err(w, http.StatusInternalServerError, err.Error())
	default:
		logger.WithCtx(r.Context()).Error("request failed", "error", err)
		response.Err(w, http.StatusInternalServerError, err.Error())
	}
}
