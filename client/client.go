// Package client is a thin Go wrapper over the task API, for scripts and
// other services that talk to a running instance.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jayagayathricodes/SmartTaskManager/models"
)

// ErrNotFound reports a 404 from the server.
var ErrNotFound = errors.New("task not found")

// StatusError carries a non-2xx response status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
	}
}

func (c *Client) ListTasks(ctx context.Context) ([]models.TaskResponse, error) {
	var tasks []models.TaskResponse
	err := c.do(ctx, http.MethodGet, "/api/Task", nil, http.StatusOK, &tasks)
	return tasks, err
}

func (c *Client) GetTask(ctx context.Context, id uint) (*models.TaskResponse, error) {
	var task models.TaskResponse
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/Task/%d", id), nil, http.StatusOK, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask sends the task for creation and returns the created task with
// the server-assigned id and the AI-enhanced description and category.
func (c *Client) CreateTask(ctx context.Context, task *models.TaskRequest) (*models.TaskResponse, error) {
	var created models.TaskResponse
	err := c.do(ctx, http.MethodPost, "/api/Task", task, http.StatusCreated, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTask(ctx context.Context, task *models.TaskRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/Task/%d", task.ID), task, http.StatusNoContent, nil)
}

func (c *Client) DeleteTask(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/Task/%d", id), nil, http.StatusNoContent, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, wantStatus int, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if res.StatusCode != wantStatus {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return &StatusError{StatusCode: res.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out != nil {
		return json.NewDecoder(res.Body).Decode(out)
	}
	return nil
}
