// Package client implements the interactive pieces of the back office
// front end: a remote-backed select controller, a linear focus-advance
// form flow, and a last-request-wins detail loader, together with the
// HTTP client they fetch through.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Option is a single selectable entry in a remote-backed select field.
type Option struct {
	ID    uint
	Label string
}

// OptionPage is one fetched page of options.
type OptionPage struct {
	Options []Option
	HasNext bool
}

// FetchFunc loads one page of options for a search term. Page numbers
// start at 1. An empty search means the unfiltered list.
type FetchFunc func(ctx context.Context, search string, page int) (OptionPage, error)

// Client talks to the back office API.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient returns a Client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type envelope struct {
	Status     string          `json:"status"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		Total       int64 `json:"total"`
		Page        int   `json:"page"`
		PerPage     int   `json:"per_page"`
		TotalPages  int64 `json:"total_pages"`
		HasNextPage *bool `json:"has_next_page"`
	} `json:"pagination"`
}

// Request performs an API call and decodes the standard response
// envelope. A non-success envelope is returned as an error.
func (c *Client) Request(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if env.Status != "success" {
		return &env, fmt.Errorf("%s %s: %s", method, path, env.Message)
	}
	return &env, nil
}

// hasNext normalizes pagination to a single boolean. Older responses
// carry only total and page; newer ones carry has_next_page directly.
func (e *envelope) hasNext() bool {
	if e.Pagination == nil {
		return false
	}
	if e.Pagination.HasNextPage != nil {
		return *e.Pagination.HasNextPage
	}
	if e.Pagination.PerPage <= 0 {
		return false
	}
	seen := int64(e.Pagination.Page) * int64(e.Pagination.PerPage)
	return seen < e.Pagination.Total
}

// optionFetcher builds a FetchFunc for a lookup endpoint. listKey names
// the array inside the data object; labelKey the display field.
func (c *Client) optionFetcher(path, listKey, labelKey string) FetchFunc {
	return func(ctx context.Context, search string, page int) (OptionPage, error) {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		if search != "" {
			query.Set("search", search)
		}

		env, err := c.Request(ctx, http.MethodGet, path+"?"+query.Encode(), nil)
		if err != nil {
			return OptionPage{}, err
		}

		var data map[string]json.RawMessage
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return OptionPage{}, fmt.Errorf("decode %s list: %w", listKey, err)
		}

		var rows []map[string]interface{}
		if raw, ok := data[listKey]; ok {
			if err := json.Unmarshal(raw, &rows); err != nil {
				return OptionPage{}, fmt.Errorf("decode %s rows: %w", listKey, err)
			}
		}

		result := OptionPage{HasNext: env.hasNext()}
		for _, row := range rows {
			id, ok := row["id"].(float64)
			if !ok {
				continue
			}
			label, _ := row[labelKey].(string)
			result.Options = append(result.Options, Option{ID: uint(id), Label: label})
		}
		return result, nil
	}
}

// ProductOptions returns a FetchFunc backed by the product lookup.
func (c *Client) ProductOptions() FetchFunc {
	return c.optionFetcher("/v1/products", "products", "name")
}

// CategoryOptions returns a FetchFunc backed by the category lookup.
func (c *Client) CategoryOptions() FetchFunc {
	return c.optionFetcher("/v1/categories", "categories", "name")
}

// SupplierOptions returns a FetchFunc backed by the supplier lookup.
func (c *Client) SupplierOptions() FetchFunc {
	return c.optionFetcher("/v1/suppliers", "suppliers", "name")
}

// Login authenticates and stores the bearer token for later requests.
func (c *Client) Login(ctx context.Context, email, password string) error {
	env, err := c.Request(ctx, http.MethodPost, "/v1/admin/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	if data.Token == "" {
		return fmt.Errorf("login response carried no token")
	}
	c.Token = data.Token
	return nil
}

// GetDetail fetches a single record and returns the raw data object.
func (c *Client) GetDetail(ctx context.Context, path string) (map[string]interface{}, error) {
	env, err := c.Request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var data map[string]interface{}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("decode detail: %w", err)
	}
	return data, nil
}
