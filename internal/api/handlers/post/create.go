package post

import (
	"encoding/json"
	"net/http"

	"postboard/internal/api/handlers"
	"postboard/internal/api/middleware"
	"postboard/internal/core/posts"
)

// maxBodySize caps JSON request bodies. 1MB allows for long post text
// while preventing abuse.
const maxBodySize = 1 * 1024 * 1024

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate creates a new post authored by the requester
// POST /api/v1/posts
//
// Request body: { "title": "...", "text": "...", "image": "...", "tags": [...] }
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var input posts.CreatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		if err.Error() == "http: request body too large" {
			handlers.WriteError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge",
				"Request body too large (max 1MB)")
			return
		}
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	// Author comes from the authenticated identity, never the body
	userID := middleware.GetUserID(r)

	created, err := h.service.Create(r.Context(), userID, input)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, created)
}
