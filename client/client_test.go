package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPosts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/posts", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("size"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(PostList{
			Total: 12,
			Posts: []Post{{ID: "post-1", Title: "First", Author: "alice"}},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, "")
	list, err := c.ListPosts(context.Background(), Pagination{Page: 2, Size: 5})

	require.NoError(t, err)
	assert.Equal(t, 12, list.Total)
	require.Len(t, list.Posts, 1)
	assert.Equal(t, "post-1", list.Posts[0].ID)
}

func TestListPosts_OmitsZeroPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_ = json.NewEncoder(w).Encode(PostList{})
	}))
	defer server.Close()

	c := NewClient(server.URL, "")
	_, err := c.ListPosts(context.Background(), Pagination{})

	require.NoError(t, err)
}

func TestSearchByTags_SplitsOnWhitespace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/posts/by-tag", r.URL.Path)

		var req tagSearchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"go", "databases", "testing"}, req.Tags)

		_ = json.NewEncoder(w).Encode(PostList{Total: 1, Posts: []Post{{ID: "post-1"}}})
	}))
	defer server.Close()

	c := NewClient(server.URL, "")
	list, err := c.SearchByTags(context.Background(), "  go   databases\ttesting ", Pagination{})

	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestCreatePost_SendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req CreatePostRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Go slices", req.Title)

		_ = json.NewEncoder(w).Encode(Post{ID: "post-1", Title: req.Title, Author: "alice"})
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret-token")
	created, err := c.CreatePost(context.Background(), CreatePostRequest{
		Title: "Go slices",
		Text:  "Length versus capacity",
	})

	require.NoError(t, err)
	assert.Equal(t, "post-1", created.ID)
	assert.Equal(t, "alice", created.Author)
}

func TestUpdatePost_OmitsNilFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)

		var raw map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Contains(t, raw, "text")
		assert.NotContains(t, raw, "title")
		assert.NotContains(t, raw, "image")
		assert.NotContains(t, raw, "tags")

		_ = json.NewEncoder(w).Encode(Post{ID: "post-1", Text: "revised"})
	}))
	defer server.Close()

	text := "revised"
	c := NewClient(server.URL, "secret-token")
	updated, err := c.UpdatePost(context.Background(), "post-1", UpdatePostRequest{Text: &text})

	require.NoError(t, err)
	assert.Equal(t, "revised", updated.Text)
}

func TestDeletePost_ReturnsID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/posts/post-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(deleteResponse{ID: "post-1"})
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret-token")
	id, err := c.DeletePost(context.Background(), "post-1")

	require.NoError(t, err)
	assert.Equal(t, "post-1", id)
}

func TestLikeUnlike_Paths(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		paths = append(paths, r.URL.Path)
		_ = json.NewEncoder(w).Encode(Post{ID: "post-1"})
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret-token")

	_, err := c.LikePost(context.Background(), "post-1")
	require.NoError(t, err)
	_, err = c.UnlikePost(context.Background(), "post-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"/api/v1/posts/post-1/like", "/api/v1/posts/post-1/unlike"}, paths)
}

func TestServerRejection_CarriesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"Forbidden","message":"Only the post author may do this"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret-token")
	_, err := c.DeletePost(context.Background(), "post-1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "Forbidden", apiErr.ErrorType)
	assert.Equal(t, "Only the post author may do this", apiErr.Message)
}

func TestServerRejection_FallbackMessageOnUnparseableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	c := NewClient(server.URL, "")
	_, err := c.ListPosts(context.Background(), Pagination{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "Error while fetching posts", apiErr.Message)
}

func TestTransportFailure_IsNotAnAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	c := NewClient(server.URL, "")
	_, err := c.ListPosts(context.Background(), Pagination{})

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestGetPost_EscapesID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/posts/a%2Fb", r.URL.EscapedPath())
		_ = json.NewEncoder(w).Encode(Post{ID: "a/b"})
	}))
	defer server.Close()

	c := NewClient(server.URL, "")
	found, err := c.GetPost(context.Background(), "a/b")

	require.NoError(t, err)
	assert.Equal(t, "a/b", found.ID)
}
