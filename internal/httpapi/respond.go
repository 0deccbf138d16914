package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/safar/loja/internal/database"
	"github.com/safar/loja/internal/integrity"
	"github.com/safar/loja/internal/logger"
	"github.com/safar/loja/internal/validation"
)

type errorResponse struct {
	Error      string                 `json:"error"`
	Violations []validation.Violation `json:"violations,omitempty"`
	Blocking   *blocking              `json:"blocking,omitempty"`
}

type blocking struct {
	Parent   string `json:"parent"`
	ParentID int64  `json:"parent_id"`
	Child    string `json:"child"`
	Column   string `json:"column"`
	Count    int    `json:"count"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("encode JSON response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondStoreError maps the store's failure kinds onto status codes.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error
	var ierr *integrity.Error

	switch {
	case errors.As(err, &verr):
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:      verr.Error(),
			Violations: verr.Violations,
		})
	case errors.As(err, &ierr):
		respondJSON(w, http.StatusConflict, errorResponse{
			Error: ierr.Error(),
			Blocking: &blocking{
				Parent:   string(ierr.Parent),
				ParentID: ierr.ParentID,
				Child:    string(ierr.Child),
				Column:   ierr.Column,
				Count:    ierr.Count,
			},
		})
	case errors.Is(err, database.ErrNotFound), errors.Is(err, integrity.ErrNoRelation):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		logger.FromContext(r.Context()).Error("request failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
