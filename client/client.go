// Package client is a typed HTTP client for the Postboard post API.
// It performs no business logic: each method serializes its arguments,
// issues the request, and classifies the outcome so callers can tell a
// transport failure from a server rejection.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is a thin HTTP wrapper for the post API. It handles base URL
// construction and bearer token injection.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a post API client. The token may be empty for
// anonymous access to public endpoints.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Pagination selects a 1-based page and page size. Zero fields are
// omitted from the query so the server applies its defaults.
type Pagination struct {
	Page int
	Size int
}

func (p Pagination) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	return q
}

// ListPosts returns all posts ordered by recency.
func (c *Client) ListPosts(ctx context.Context, page Pagination) (*PostList, error) {
	var list PostList
	err := c.do(ctx, http.MethodGet, "/api/v1/posts", page.query(), nil,
		"Error while fetching posts", &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// SearchByTags returns posts matching any tag in the whitespace
// delimited search string, which is split into tags client-side.
func (c *Client) SearchByTags(ctx context.Context, search string, page Pagination) (*PostList, error) {
	body := tagSearchRequest{Tags: strings.Fields(search)}
	var list PostList
	err := c.do(ctx, http.MethodPost, "/api/v1/posts/by-tag", page.query(), body,
		"Error while fetching posts by tag", &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// MyPosts returns the authenticated user's posts.
func (c *Client) MyPosts(ctx context.Context, page Pagination) (*PostList, error) {
	var list PostList
	err := c.do(ctx, http.MethodGet, "/api/v1/posts/my-posts", page.query(), nil,
		"Error while fetching user posts", &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// GetPost fetches a single post by id.
func (c *Client) GetPost(ctx context.Context, id string) (*Post, error) {
	var found Post
	err := c.do(ctx, http.MethodGet, "/api/v1/posts/"+url.PathEscape(id), nil, nil,
		"Error while fetching post", &found)
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// CreatePost creates a new post authored by the authenticated user.
func (c *Client) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	var created Post
	err := c.do(ctx, http.MethodPost, "/api/v1/posts", nil, req,
		"Error while creating post", &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePost applies a partial update. Nil fields are omitted from the
// request and left unchanged on the server.
func (c *Client) UpdatePost(ctx context.Context, id string, req UpdatePostRequest) (*Post, error) {
	var updated Post
	err := c.do(ctx, http.MethodPatch, "/api/v1/posts/"+url.PathEscape(id), nil, req,
		"Error while updating post", &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePost permanently removes a post and returns its id.
func (c *Client) DeletePost(ctx context.Context, id string) (string, error) {
	var resp deleteResponse
	err := c.do(ctx, http.MethodDelete, "/api/v1/posts/"+url.PathEscape(id), nil, nil,
		"Error while deleting post", &resp)
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}

// LikePost adds the authenticated user to the post's liker set.
func (c *Client) LikePost(ctx context.Context, id string) (*Post, error) {
	var liked Post
	err := c.do(ctx, http.MethodPut, "/api/v1/posts/"+url.PathEscape(id)+"/like", nil, nil,
		"Error while liking post", &liked)
	if err != nil {
		return nil, err
	}
	return &liked, nil
}

// UnlikePost removes the authenticated user from the post's liker set.
func (c *Client) UnlikePost(ctx context.Context, id string) (*Post, error) {
	var unliked Post
	err := c.do(ctx, http.MethodPut, "/api/v1/posts/"+url.PathEscape(id)+"/unlike", nil, nil,
		"Error while unliking post", &unliked)
	if err != nil {
		return nil, err
	}
	return &unliked, nil
}

// do issues a request and decodes the response. Transport failures are
// returned as wrapped errors; non-2xx responses become an *APIError
// carrying the server's message when one was provided, else fallback.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, fallback string, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, data, fallback)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
