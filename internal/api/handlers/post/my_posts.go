package post

import (
	"net/http"

	"postboard/internal/api/handlers"
	"postboard/internal/api/middleware"
	"postboard/internal/core/posts"
)

// MyPostsHandler handles the authenticated user's own feed
type MyPostsHandler struct {
	service posts.Service
}

// NewMyPostsHandler creates a new my-posts handler
func NewMyPostsHandler(service posts.Service) *MyPostsHandler {
	return &MyPostsHandler{service: service}
}

// HandleMyPosts returns posts authored by the requester
// GET /api/v1/posts/my-posts?page=1&size=10
func (h *MyPostsHandler) HandleMyPosts(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthenticationRequired",
			"Authentication required")
		return
	}

	page, err := parsePagination(r)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	list, err := h.service.ListByAuthor(r.Context(), userID, page)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, list)
}
