package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"postboard/internal/api/handlers"
	"postboard/internal/api/middleware"
	"postboard/internal/core/posts"
)

// LikeHandler handles like and unlike requests
type LikeHandler struct {
	service posts.Service
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(service posts.Service) *LikeHandler {
	return &LikeHandler{service: service}
}

// HandleLike adds the requester to the post's liker set. Liking an
// already-liked post returns the post unchanged.
// PUT /api/v1/posts/{postID}/like
func (h *LikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	userID := middleware.GetUserID(r)

	liked, err := h.service.Like(r.Context(), postID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, liked)
}

// HandleUnlike removes the requester from the post's liker set.
// PUT /api/v1/posts/{postID}/unlike
func (h *LikeHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	userID := middleware.GetUserID(r)

	unliked, err := h.service.Unlike(r.Context(), postID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, unliked)
}
