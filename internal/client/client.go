// Package client is a small Go client for the petal HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"daisy/internal/handlers"
	"daisy/internal/models"
)

// ErrNotFound matches any APIError with status 404.
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx response from the API.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("api error: %d %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API rooted at baseURL (e.g. http://localhost:8080).
// A nil httpClient gets a 10s timeout default.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// CreatePetalInput mirrors the POST /api/petals body.
type CreatePetalInput struct {
	DayOfWeek      string `json:"dayOfWeek"`
	TimeOfDay      string `json:"timeOfDay"`
	CurrentEmotion string `json:"currentEmotion"`
	DesiredEmotion string `json:"desiredEmotion"`
	Text           string `json:"text"`
}

// DeleteResult is the DELETE /api/petals/{id} body.
type DeleteResult struct {
	Message      string            `json:"message"`
	DeletedPetal handlers.PetalDTO `json:"deletedPetal"`
}

func (c *Client) List(ctx context.Context) ([]handlers.PetalDTO, error) {
	var out []handlers.PetalDTO
	err := c.do(ctx, http.MethodGet, "/api/petals", nil, &out)
	return out, err
}

func (c *Client) Get(ctx context.Context, id string) (handlers.PetalDTO, error) {
	var out handlers.PetalDTO
	err := c.do(ctx, http.MethodGet, "/api/petals/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) Create(ctx context.Context, in CreatePetalInput) (handlers.PetalDTO, error) {
	var out handlers.PetalDTO
	err := c.do(ctx, http.MethodPost, "/api/petals", in, &out)
	return out, err
}

func (c *Client) UpdateText(ctx context.Context, id, text string) (handlers.PetalDTO, error) {
	var out handlers.PetalDTO
	body := map[string]string{"text": text}
	err := c.do(ctx, http.MethodPut, "/api/petals/"+url.PathEscape(id), body, &out)
	return out, err
}

func (c *Client) Delete(ctx context.Context, id string) (DeleteResult, error) {
	var out DeleteResult
	err := c.do(ctx, http.MethodDelete, "/api/petals/"+url.PathEscape(id), nil, &out)
	return out, err
}

// Moment asks the server for its current day of week and time of day.
func (c *Client) Moment(ctx context.Context) (models.Moment, error) {
	var out models.Moment
	err := c.do(ctx, http.MethodGet, "/api/moment", nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Error
			apiErr.Fields = payload.Fields
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
