// Package client provides an HTTP client for the Money Tracker API.
package client

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

	"github.com/shopspring/decimal"

	"moneytracker/internal/aggregate"
	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/models"
)

// TransactionPayload is the body of a create or update request. Nil fields
// are omitted so updates only touch what was set.
type TransactionPayload struct {
	Type        *models.TransactionKind `json:"type,omitempty"`
	Amount      *decimal.Decimal        `json:"amount,omitempty"`
	CategoryID  *int                    `json:"categoryId,omitempty"`
	Description *string                 `json:"description,omitempty"`
	Date        *time.Time              `json:"date,omitempty"`
}

// envelope is the {success, data, message} wrapper every response uses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
}

type statsBody struct {
	Income            decimal.Decimal `json:"income"`
	Expenses          decimal.Decimal `json:"expenses"`
	Balance           decimal.Decimal `json:"balance"`
	TotalTransactions int             `json:"totalTransactions"`
}

// StoreClient is a remote transaction store reached over HTTP. Errors are
// AppErrors: 400 and 404 map to validation and not-found, anything else
// (including network failures) to ErrTransport.
type StoreClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewStoreClient creates a new store client.
func NewStoreClient(baseURL, apiKey string, httpClient *http.Client) *StoreClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &StoreClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// New creates a store client from cfg.
func New(cfg Config) *StoreClient {
	return NewStoreClient(cfg.BaseURL, cfg.APIKey, &http.Client{Timeout: cfg.Timeout})
}

// ListAll fetches every transaction, most recent first.
func (c *StoreClient) ListAll(ctx context.Context) ([]models.Transaction, error) {
	var out []models.Transaction
	if err := c.do(ctx, http.MethodGet, "/api/transactions", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Transaction{}
	}
	return out, nil
}

// ListByDateRange fetches transactions dated within [start, end].
func (c *StoreClient) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.Transaction, error) {
	path := fmt.Sprintf("/api/transactions/range/%s/%s",
		url.PathEscape(start.UTC().Format(time.RFC3339Nano)),
		url.PathEscape(end.UTC().Format(time.RFC3339Nano)))

	var out []models.Transaction
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Transaction{}
	}
	return out, nil
}

// GetByID fetches a single transaction.
func (c *StoreClient) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	var out models.Transaction
	if err := c.do(ctx, http.MethodGet, "/api/transactions/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create stores a new transaction and returns it as persisted.
func (c *StoreClient) Create(ctx context.Context, p TransactionPayload) (*models.Transaction, error) {
	var out models.Transaction
	if err := c.do(ctx, http.MethodPost, "/api/transactions", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update changes the fields set in p.
func (c *StoreClient) Update(ctx context.Context, id string, p TransactionPayload) (*models.Transaction, error) {
	var out models.Transaction
	if err := c.do(ctx, http.MethodPut, "/api/transactions/"+url.PathEscape(id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a transaction.
func (c *StoreClient) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/transactions/"+url.PathEscape(id), nil, nil)
}

// GetStats fetches the store-wide totals.
func (c *StoreClient) GetStats(ctx context.Context) (aggregate.Totals, error) {
	var body statsBody
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, &body); err != nil {
		return aggregate.Totals{}, err
	}
	return aggregate.Totals{
		Income:   body.Income,
		Expenses: body.Expenses,
		Balance:  body.Balance,
		Count:    body.TotalTransactions,
	}, nil
}

func (c *StoreClient) do(ctx context.Context, method, path string, in, out interface{}) error {
	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrTransport, fmt.Errorf("%s %s: %w", method, path, err))
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.Wrap(apperrors.FromStatus(resp.StatusCode, env.Message),
			fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode))
	}
	if decodeErr != nil {
		return apperrors.Wrap(apperrors.ErrTransport, fmt.Errorf("decoding %s response: %w", path, decodeErr))
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return apperrors.Wrap(apperrors.ErrTransport, fmt.Errorf("decoding %s data: %w", path, err))
	}
	return nil
}
