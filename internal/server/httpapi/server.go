// Package httpapi exposes the blog over HTTP: routing, the authentication
// middleware, request logging, and the JSON error mapping.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"moodblog/internal/logging"
	"moodblog/internal/server/services"
)

type Server struct {
	address string
	logger  logging.Logger
	users   *services.UserService
	posts   *services.PostService
}

func NewServer(a string, l logging.Logger, us *services.UserService, ps *services.PostService) *Server {
	return &Server{
		address: a,
		logger:  l.With("module", "http_server"),
		users:   us,
		posts:   ps,
	}
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)

	// reads are public, mutations require an identity
	mux.HandleFunc("GET /api/posts", s.handleListPosts)
	mux.HandleFunc("GET /api/posts/{id}", s.handleGetPost)
	mux.HandleFunc("POST /api/posts", s.requireUser(s.handleCreatePost))
	mux.HandleFunc("PUT /api/posts/{id}", s.requireUser(s.handleUpdatePost))
	mux.HandleFunc("DELETE /api/posts/{id}", s.requireUser(s.handleDeletePost))

	return s.requestLogger(mux)
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
