// Package httpapi exposes the user lifecycle service over a thin JSON
// boundary. It owns serialization and status mapping only; all semantics
// live in the service layer.
package httpapi

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/kharvol/tms/internal/service"
)

// Server is the HTTP boundary over the user service.
type Server struct {
	users         *service.UserInfoService
	log           *zap.Logger
	defaultLocale language.Tag
}

// NewServer constructs the HTTP boundary.
func NewServer(users *service.UserInfoService, log *zap.Logger, defaultLocale language.Tag) *Server {
	return &Server{users: users, log: log, defaultLocale: defaultLocale}
}

// Handler builds the routing table wrapped in recovery, logging and
// locale-selection middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users", s.handleCreate)
	mux.HandleFunc("GET /users", s.handleList)
	mux.HandleFunc("GET /users/{id}", s.handleGet)
	mux.HandleFunc("PUT /users/{id}", s.handleUpdate)
	mux.HandleFunc("PATCH /users/{id}", s.handlePatch)
	mux.HandleFunc("DELETE /users/{id}", s.handleDelete)

	var h http.Handler = mux
	h = s.locale(h)
	h = s.logging(h)
	h = s.recovery(h)
	return h
}
