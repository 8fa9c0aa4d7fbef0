package post

import (
	"net/http"

	"postboard/internal/api/handlers"
	"postboard/internal/core/posts"
)

// ListHandler handles the public post feed
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList returns all posts ordered by recency
// GET /api/v1/posts?page=1&size=10
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := parsePagination(r)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	list, err := h.service.ListAll(r.Context(), page)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, list)
}
