// Package client is the board's client side: a bearer-authenticated API
// client plus a state controller that mirrors the last server-confirmed
// state of the todo and user lists.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"todoboard/dto"
	"todoboard/model"
)

// APIError carries the server's status code and error body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// APIClient issues authenticated requests against the board API.
type APIClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewAPIClient(baseURL, token string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    http.DefaultClient,
	}
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		message := resp.Status
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error != "" {
			message = errBody.Error
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *APIClient) ListTodos(ctx context.Context) ([]model.Todo, error) {
	var todos []model.Todo
	if err := c.do(ctx, http.MethodGet, "/todos", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (c *APIClient) CreateTodo(ctx context.Context, input dto.CreateTodoRequest) (model.Todo, error) {
	var created model.Todo
	if err := c.do(ctx, http.MethodPost, "/todos", input, &created); err != nil {
		return model.Todo{}, err
	}
	return created, nil
}

func (c *APIClient) UpdateTodo(ctx context.Context, id string, patch dto.UpdateTodoRequest) (model.Todo, error) {
	var updated model.Todo
	if err := c.do(ctx, http.MethodPatch, "/todos/"+id, patch, &updated); err != nil {
		return model.Todo{}, err
	}
	return updated, nil
}

func (c *APIClient) DeleteTodo(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/todos/"+id, nil, nil)
}

func (c *APIClient) ListUsers(ctx context.Context) ([]model.AppUser, error) {
	var users []model.AppUser
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
