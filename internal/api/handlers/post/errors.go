package post

import (
	"errors"
	"log"
	"net/http"

	"postboard/internal/api/handlers"
	"postboard/internal/core/posts"
)

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, posts.ErrNotAuthenticated):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthenticationRequired",
			"Authentication required")

	case errors.Is(err, posts.ErrNotOwner):
		handlers.WriteError(w, http.StatusForbidden, "Forbidden",
			"Only the post author may do this")

	case posts.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "NotFound",
			"Post not found")

	case posts.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError",
			"An internal error occurred")
	}
}
