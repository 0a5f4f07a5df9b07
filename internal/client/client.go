package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/domain"
)

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Client is a thin HTTP client for the transactions API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API rooted at baseURL (including the /api
// prefix, e.g. https://host/api).
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// CreateTransactionRequest mirrors the POST /transactions body.
type CreateTransactionRequest struct {
	UserID   string  `json:"userId"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

// DeleteResult mirrors the DELETE /transactions/:id response.
type DeleteResult struct {
	Message     string             `json:"message"`
	DeletedItem domain.Transaction `json:"deletedItem"`
}

func (c *Client) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions/"+userID, nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *Client) GetSummary(ctx context.Context, userID string) (*domain.Summary, error) {
	var sum domain.Summary
	if err := c.do(ctx, http.MethodGet, "/transactions/summary/"+userID, nil, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

func (c *Client) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*domain.Transaction, error) {
	var tx domain.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions", req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id int64) (*DeleteResult, error) {
	var res DeleteResult
	if err := c.do(ctx, http.MethodDelete, "/transactions/"+strconv.FormatInt(id, 10), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Health(ctx context.Context) error {
	var status struct {
		Status string `json:"status"`
	}
	return c.do(ctx, http.MethodGet, "/health", nil, &status)
}

// do performs one request and decodes either the expected body or the
// {"message": ...} error envelope.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: "request failed"}
		var envelope struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil && envelope.Message != "" {
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
