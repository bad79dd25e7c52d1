// Package api is the HTTP client for the remote family-budget store. Every
// response that carries budget records is normalized before it is returned,
// so callers never see a record without a usable id.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fabu/pkg/models"
)

// DefaultBaseURL matches the store's local development address.
const DefaultBaseURL = "http://localhost:3000"

// Error is a non-2xx response from the store.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// Client talks to the budget store.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base URL. A nil httpClient gets a
// default with a 30 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Budgets fetches every budget visible to the client.
func (c *Client) Budgets(ctx context.Context) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := c.do(ctx, http.MethodGet, "/budgets", nil, &budgets); err != nil {
		return nil, err
	}
	if err := models.NormalizeBudgets(budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

// Budget fetches a single budget by id.
func (c *Client) Budget(ctx context.Context, id string) (models.Budget, error) {
	if err := requireID("budgetId", id); err != nil {
		return models.Budget{}, err
	}
	var b models.Budget
	if err := c.do(ctx, http.MethodGet, "/budgets/"+url.PathEscape(id), nil, &b); err != nil {
		return models.Budget{}, err
	}
	if err := models.NormalizeBudget(&b); err != nil {
		return models.Budget{}, err
	}
	return b, nil
}

// Summary fetches the store's own summary for a budget. The local engine in
// pkg/budget computes the same shape; this endpoint exists so the two can be
// compared.
func (c *Client) Summary(ctx context.Context, id string) (models.BudgetSummary, error) {
	if err := requireID("budgetId", id); err != nil {
		return models.BudgetSummary{}, err
	}
	var s models.BudgetSummary
	if err := c.do(ctx, http.MethodGet, "/budgets/summary/"+url.PathEscape(id), nil, &s); err != nil {
		return models.BudgetSummary{}, err
	}
	return s, nil
}

// CreateBudget creates a budget from a partial record.
func (c *Client) CreateBudget(ctx context.Context, b models.Budget) (models.Budget, error) {
	var created models.Budget
	if err := c.do(ctx, http.MethodPost, "/budgets", b, &created); err != nil {
		return models.Budget{}, err
	}
	if err := models.NormalizeBudget(&created); err != nil {
		return models.Budget{}, err
	}
	return created, nil
}

// UpdateBudget updates a budget from a partial record.
func (c *Client) UpdateBudget(ctx context.Context, id string, b models.Budget) (models.Budget, error) {
	if err := requireID("budgetId", id); err != nil {
		return models.Budget{}, err
	}
	var updated models.Budget
	if err := c.do(ctx, http.MethodPut, "/budgets/"+url.PathEscape(id), b, &updated); err != nil {
		return models.Budget{}, err
	}
	if err := models.NormalizeBudget(&updated); err != nil {
		return models.Budget{}, err
	}
	return updated, nil
}

// DeleteBudget removes a budget from the store.
func (c *Client) DeleteBudget(ctx context.Context, id string) error {
	if err := requireID("budgetId", id); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/budgets/"+url.PathEscape(id), nil, nil)
}

// AddItem posts a new item and returns the updated budget the store sends
// back. The store assigns the item id and defaults the date when unset.
func (c *Client) AddItem(ctx context.Context, budgetID string, item models.BudgetItem) (models.Budget, error) {
	if err := requireID("budgetId", budgetID); err != nil {
		return models.Budget{}, err
	}
	var updated models.Budget
	path := "/budgets/" + url.PathEscape(budgetID) + "/items"
	if err := c.do(ctx, http.MethodPost, path, item, &updated); err != nil {
		return models.Budget{}, err
	}
	if err := models.NormalizeBudget(&updated); err != nil {
		return models.Budget{}, err
	}
	return updated, nil
}

// RemoveItem deletes an item and returns the updated budget. Removal of an
// unknown itemId is the store's call; whatever budget comes back is the new
// truth.
func (c *Client) RemoveItem(ctx context.Context, budgetID, itemID string) (models.Budget, error) {
	if err := requireID("budgetId", budgetID); err != nil {
		return models.Budget{}, err
	}
	if err := requireID("itemId", itemID); err != nil {
		return models.Budget{}, err
	}
	var updated models.Budget
	path := "/budgets/" + url.PathEscape(budgetID) + "/items/" + url.PathEscape(itemID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &updated); err != nil {
		return models.Budget{}, err
	}
	if err := models.NormalizeBudget(&updated); err != nil {
		return models.Budget{}, err
	}
	return updated, nil
}

func requireID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return models.NewValidationError(field, field+" is required")
	}
	return nil
}

// do runs one round-trip: marshal body, send, map non-2xx to *Error, decode
// into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Message: errorMessage(resp)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response for %s %s: %w", method, path, err)
	}
	return nil
}

func errorMessage(resp *http.Response) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return http.StatusText(resp.StatusCode)
}
