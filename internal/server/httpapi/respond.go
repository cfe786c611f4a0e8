package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"moodblog/internal/common"
	"moodblog/internal/server/models"
)

type userJSON struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`
}

type authorJSON struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

type postJSON struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Author    authorJSON `json:"author"`
	Mood      string     `json:"mood"`
	CreatedAt time.Time  `json:"created_at"`
}

type errorJSON struct {
	Error string `json:"error"`
}

func toUserJSON(u *models.User) userJSON {
	return userJSON{ID: u.ID, Email: u.Email, Bio: u.Bio, Avatar: u.Avatar}
}

func toPostJSON(p *models.Post) postJSON {
	return postJSON{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Content,
		Author: authorJSON{
			ID:     p.AuthorID,
			Email:  p.AuthorEmail,
			Avatar: p.AuthorAvatar,
		},
		Mood:      string(p.Mood),
		CreatedAt: p.CreatedAt,
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(context.Background(), "response encode error", "error", err.Error())
	}
}

// writeError maps the sentinel taxonomy onto HTTP status codes. Anything
// unmatched is an internal error; its detail is logged, not leaked.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *common.ValidationError

	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.As(err, &vErr):
		status, msg = http.StatusBadRequest, vErr.Error()
	case errors.Is(err, common.ErrDuplicateEmail):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrMissingCredential),
		errors.Is(err, common.ErrTokenMalformed),
		errors.Is(err, common.ErrInvalidSignature),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrUserNotFound):
		status, msg = http.StatusUnauthorized, err.Error()
	case errors.Is(err, common.ErrOwnershipDenied):
		status, msg = http.StatusForbidden, err.Error()
	case errors.Is(err, common.ErrorNotFound):
		status, msg = http.StatusNotFound, "not found"
	default:
		s.logger.Error(r.Context(), "request failed", "error", err.Error())
	}

	s.writeJSON(w, status, errorJSON{Error: msg})
}
