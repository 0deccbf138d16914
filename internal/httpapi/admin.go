package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/safar/loja/internal/models"
)

func (s *Server) handleAdminIndex(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{"resources": resourceNames()})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	kind, ok := resourceKind(w, r)
	if !ok {
		return
	}

	e, ok := decodeEntity(w, r, kind)
	if !ok {
		return
	}

	saved, err := s.repo.Create(r.Context(), e)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	kind, ok := resourceKind(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	e, err := s.repo.Get(r.Context(), kind, id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, e)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	kind, ok := resourceKind(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	e, ok := decodeEntity(w, r, kind)
	if !ok {
		return
	}
	if e.Key() != 0 && e.Key() != id {
		respondError(w, http.StatusBadRequest, "Body id does not match path id")
		return
	}
	e.SetKey(id)

	saved, err := s.repo.Update(r.Context(), e)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	kind, ok := resourceKind(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.repo.Delete(r.Context(), kind, id); err != nil {
		respondStoreError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListChildren(w http.ResponseWriter, r *http.Request) {
	kind, ok := resourceKind(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	child, found := resources[r.PathValue("child")]
	if !found {
		respondError(w, http.StatusNotFound, "Unknown resource")
		return
	}

	children, err := s.repo.ListChildren(r.Context(), kind, id, child)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	if children == nil {
		children = []models.Entity{}
	}

	respondJSON(w, http.StatusOK, children)
}

func resourceKind(w http.ResponseWriter, r *http.Request) (models.Kind, bool) {
	kind, ok := resources[r.PathValue("resource")]
	if !ok {
		respondError(w, http.StatusNotFound, "Unknown resource")
		return "", false
	}
	return kind, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return id, true
}

func decodeEntity(w http.ResponseWriter, r *http.Request, kind models.Kind) (models.Entity, bool) {
	e, err := models.New(kind)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	if err := json.NewDecoder(r.Body).Decode(e); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	return e, true
}
