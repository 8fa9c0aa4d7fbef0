package post

import (
	"encoding/json"
	"net/http"

	"postboard/internal/api/handlers"
	"postboard/internal/core/posts"
)

// listByTagsRequest is the tag search body
type listByTagsRequest struct {
	Tags []string `json:"tags"`
}

// ListByTagsHandler handles tag-overlap search
type ListByTagsHandler struct {
	service posts.Service
}

// NewListByTagsHandler creates a new tag search handler
func NewListByTagsHandler(service posts.Service) *ListByTagsHandler {
	return &ListByTagsHandler{service: service}
}

// HandleListByTags returns posts whose tags intersect the requested set
// POST /api/v1/posts/by-tag?page=1&size=10
//
// Request body: { "tags": ["go", "databases"] }
func (h *ListByTagsHandler) HandleListByTags(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req listByTagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	page, err := parsePagination(r)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	list, err := h.service.ListByTags(r.Context(), req.Tags, page)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, list)
}
