package client

import (
	"encoding/json"
	"fmt"
	"time"
)

// Post mirrors the server's post representation.
type Post struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Image     string    `json:"image,omitempty"`
	Author    string    `json:"author"`
	Tags      []string  `json:"tags"`
	LikedBy   []string  `json:"likedBy"`
}

// PostList is the paginated listing envelope.
type PostList struct {
	Total int    `json:"total"`
	Posts []Post `json:"posts"`
}

// CreatePostRequest is the body for CreatePost.
type CreatePostRequest struct {
	Title string   `json:"title"`
	Text  string   `json:"text"`
	Image string   `json:"image,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

// UpdatePostRequest is the body for UpdatePost. Nil fields are omitted
// and left unchanged on the server.
type UpdatePostRequest struct {
	Title *string   `json:"title,omitempty"`
	Text  *string   `json:"text,omitempty"`
	Image *string   `json:"image,omitempty"`
	Tags  *[]string `json:"tags,omitempty"`
}

type tagSearchRequest struct {
	Tags []string `json:"tags"`
}

type deleteResponse struct {
	ID string `json:"id"`
}

// APIError is a server rejection: the request reached the server and
// was refused. Transport failures are plain wrapped errors instead.
type APIError struct {
	StatusCode int
	ErrorType  string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d (%s): %s", e.StatusCode, e.ErrorType, e.Message)
}

// newAPIError decodes the server's error envelope, falling back to the
// per-operation message when the body is missing or unparseable.
func newAPIError(statusCode int, body []byte, fallback string) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Message: fallback}

	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			apiErr.ErrorType = envelope.Error
		}
		if envelope.Message != "" {
			apiErr.Message = envelope.Message
		}
	}

	return apiErr
}
