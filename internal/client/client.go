// Package client is the Go side of the fact board frontend: a thin
// JSON client for the fact API and a state controller that a
// presentation layer renders from.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"factboard/internal/models"
)

// APIError is any non-2xx response from the fact service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("fact api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("fact api: status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) ListFacts(ctx context.Context) ([]models.Fact, error) {
	var facts []models.Fact
	if err := c.do(ctx, http.MethodGet, "/facts", nil, &facts); err != nil {
		return nil, err
	}
	return facts, nil
}

func (c *Client) ListFactsByCategory(ctx context.Context, category string) ([]models.Fact, error) {
	var facts []models.Fact
	if err := c.do(ctx, http.MethodGet, "/facts/"+category, nil, &facts); err != nil {
		return nil, err
	}
	return facts, nil
}

func (c *Client) GetFact(ctx context.Context, id uint) (*models.Fact, error) {
	var fact models.Fact
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/facts/%d", id), nil, &fact); err != nil {
		return nil, err
	}
	return &fact, nil
}

// CreateFact submits a new fact. When the server echoes the created
// record in the 201 body the result carries the assigned id; a bodyless
// 201 yields (nil, nil).
func (c *Client) CreateFact(ctx context.Context, input models.FactInput) (*models.Fact, error) {
	var fact models.Fact
	ok, err := c.doOptional(ctx, http.MethodPost, "/facts", input, &fact)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &fact, nil
}

// Vote casts one vote of one kind on one fact. The updated record is
// returned when the server includes it in the response.
func (c *Client) Vote(ctx context.Context, id uint, kind models.VoteKind) (*models.Fact, error) {
	var fact models.Fact
	path := fmt.Sprintf("/facts/%d/%s", id, kind)
	ok, err := c.doOptional(ctx, http.MethodPut, path, nil, &fact)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &fact, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	_, err := c.doOptional(ctx, method, path, body, out)
	return err
}

// doOptional runs one request and decodes the response into out when a
// body is present. The bool reports whether out was filled.
func (c *Client) doOptional(ctx context.Context, method, path string, body, out any) (bool, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return false, err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return false, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &payload) == nil {
			apiErr.Message = payload.Error
		}
		return false, apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}
