package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/kharvol/tms/internal/domain"
	"github.com/kharvol/tms/internal/errs"
	"github.com/kharvol/tms/internal/patch"
	"github.com/kharvol/tms/internal/repository"
)

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var dto domain.UserInfoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	saved, err := s.users.Save(r.Context(), dto)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	dto, err := s.users.FindByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Has("size") {
		size, _ := strconv.Atoi(q.Get("size"))
		number, _ := strconv.Atoi(q.Get("page"))
		page, err := s.users.FindPage(r.Context(), repository.Page{Number: max(0, number), Size: max(0, size)})
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pageResponse{
			Content:       page.Content,
			Number:        page.Number,
			Size:          page.Size,
			TotalElements: page.TotalElements,
			TotalPages:    page.TotalPages,
		})
		return
	}

	dtos, err := s.users.FindAll(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var dto domain.UserInfoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := s.users.Update(r.Context(), r.PathValue("id"), dto)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handlePatch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	doc, err := patch.Parse(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid patch document")
		return
	}
	patched, err := s.users.Patch(r.Context(), r.PathValue("id"), doc)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, patched)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type pageResponse struct {
	Content       []domain.UserInfoDTO `json:"content"`
	Number        int                  `json:"number"`
	Size          int                  `json:"size"`
	TotalElements int64                `json:"totalElements"`
	TotalPages    int                  `json:"totalPages"`
}

type errorResponse struct {
	Error      string           `json:"error"`
	Violations []errs.Violation `json:"violations,omitempty"`
}

// writeServiceError maps the service error kinds onto status codes.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	var verr *errs.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Violations: verr.Violations})
	case errors.Is(err, errs.ErrMalformedPatch):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidValue):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
