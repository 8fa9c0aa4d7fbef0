package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"postboard/internal/api/handlers"
	"postboard/internal/api/middleware"
	"postboard/internal/core/posts"
)

// deleteResponse carries the id of the removed post
type deleteResponse struct {
	ID string `json:"id"`
}

// DeleteHandler handles post deletion
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new delete handler
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete permanently removes a post. Only the author may delete.
// DELETE /api/v1/posts/{postID}
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	userID := middleware.GetUserID(r)

	deletedID, err := h.service.Delete(r.Context(), postID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, deleteResponse{ID: deletedID})
}
