package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"moodblog/internal/common"
	"moodblog/internal/server/models"
	"moodblog/internal/server/repositories/posts"
	"moodblog/internal/server/services"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  userJSON `json:"user"`
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorJSON{Error: "invalid JSON"})
		return false
	}
	return true
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	user, token, err := s.users.Register(r.Context(), req.Email, req.Password, req.Bio, req.Avatar)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "registered", "email", user.Email)
	s.writeJSON(w, http.StatusCreated, authResponse{Token: token, User: toUserJSON(user)})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	user, token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, authResponse{Token: token, User: toUserJSON(user)})
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	filter := posts.Filter{}

	if mood := r.URL.Query().Get("mood"); mood != "" {
		filter.Mood = models.Mood(mood)
	}
	if author := r.URL.Query().Get("author_id"); author != "" {
		id, err := strconv.ParseInt(author, 10, 64)
		if err != nil {
			s.writeError(w, r, common.NewValidationError("author_id"))
			return
		}
		filter.AuthorID = id
	}

	items, err := s.posts.List(r.Context(), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]postJSON, 0, len(items))
	for _, p := range items {
		out = append(out, toPostJSON(p))
	}

	s.writeJSON(w, http.StatusOK, map[string][]postJSON{"posts": out})
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := s.postID(w, r)
	if !ok {
		return
	}

	post, err := s.posts.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, toPostJSON(post))
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var in services.PostInput
	if !s.decodeJSON(w, r, &in) {
		return
	}

	post, err := s.posts.Create(r.Context(), userFrom(r.Context()), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, toPostJSON(post))
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := s.postID(w, r)
	if !ok {
		return
	}

	var in services.PostInput
	if !s.decodeJSON(w, r, &in) {
		return
	}

	post, err := s.posts.Update(r.Context(), userFrom(r.Context()), id, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, toPostJSON(post))
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := s.postID(w, r)
	if !ok {
		return
	}

	if err := s.posts.Delete(r.Context(), userFrom(r.Context()), id); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}

// postID parses the {id} path segment; a non-numeric id is a 404, the same
// as an id that does not exist.
func (s *Server) postID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.writeError(w, r, common.ErrorNotFound)
		return 0, false
	}
	return id, true
}
