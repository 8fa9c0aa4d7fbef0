package post

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"postboard/internal/api/handlers"
	"postboard/internal/api/middleware"
	"postboard/internal/core/posts"
)

// UpdateHandler handles partial post updates
type UpdateHandler struct {
	service posts.Service
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service posts.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

// HandleUpdate applies the present fields of the body to the post.
// Absent fields are left unchanged, never cleared.
// PATCH /api/v1/posts/{postID}
//
// Request body: any subset of { "title", "text", "image", "tags" }
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var input posts.UpdatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	postID := chi.URLParam(r, "postID")
	userID := middleware.GetUserID(r)

	updated, err := h.service.Update(r.Context(), postID, userID, input)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, updated)
}
