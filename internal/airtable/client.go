package airtable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pathway-infinity/pathway-api/config"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotConfigured = errors.New("airtable is not configured")
	ErrNotAuthorized = errors.New("airtable rejected the credentials")
	ErrNotFound      = errors.New("airtable base or table not found")
)

// APIError is any other failed response from Airtable.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("airtable request failed (status %d, type %q): %s", e.StatusCode, e.Type, e.Message)
}

type Record struct {
	ID          string         `json:"id"`
	Fields      map[string]any `json:"fields"`
	CreatedTime string         `json:"createdTime"`
}

type ListParams struct {
	FilterByFormula string
	MaxRecords      int
}

type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset"`
}

// Client lists records of one table through the Airtable REST API.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	baseID  string
	table   string
	view    string
}

func NewClient(cfg *config.Config) *Client {
	timeout := cfg.Airtable.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	baseURL := cfg.Airtable.BaseURL
	if baseURL == "" {
		baseURL = "https://api.airtable.com/v0"
	}
	if !cfg.Airtable.Configured() {
		log.Warn().Msg("Airtable credentials are incomplete. School catalog requests will fail until they are set.")
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  cfg.Airtable.APIKey,
		baseID:  cfg.Airtable.BaseID,
		table:   config.CleanTableName(cfg.Airtable.TableName),
		view:    cfg.Airtable.View,
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != "" && c.baseID != "" && c.table != ""
}

// List follows Airtable's offset pagination until there are no more pages or
// MaxRecords rows were collected.
func (c *Client) List(ctx context.Context, params ListParams) ([]Record, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	var records []Record
	offset := ""
	for {
		page, err := c.listPage(ctx, params, offset)
		if err != nil {
			return nil, err
		}
		records = append(records, page.Records...)
		if page.Offset == "" || (params.MaxRecords > 0 && len(records) >= params.MaxRecords) {
			break
		}
		offset = page.Offset
	}
	if params.MaxRecords > 0 && len(records) > params.MaxRecords {
		records = records[:params.MaxRecords]
	}
	return records, nil
}

func (c *Client) listPage(ctx context.Context, params ListParams, offset string) (*listResponse, error) {
	q := url.Values{}
	if params.MaxRecords > 0 {
		q.Set("maxRecords", strconv.Itoa(params.MaxRecords))
	}
	if c.view != "" {
		q.Set("view", c.view)
	}
	if params.FilterByFormula != "" {
		q.Set("filterByFormula", params.FilterByFormula)
	}
	if offset != "" {
		q.Set("offset", offset)
	}
	endpoint := fmt.Sprintf("%s/%s/%s?%s", c.baseURL, url.PathEscape(c.baseID), url.PathEscape(c.table), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build airtable request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("airtable request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read airtable response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, classify(resp.StatusCode, body)
	}

	var page listResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to decode airtable response: %w", err)
	}
	return &page, nil
}

// classify maps an error response to a sentinel where one applies. Airtable
// reports the error either as a bare type string or as {type, message}.
func classify(status int, body []byte) error {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	apiErr := &APIError{StatusCode: status}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Error) > 0 {
		var detail struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		}
		if json.Unmarshal(envelope.Error, &apiErr.Type) != nil {
			if json.Unmarshal(envelope.Error, &detail) == nil {
				apiErr.Type = detail.Type
				apiErr.Message = detail.Message
			}
		}
	}

	switch {
	case apiErr.Type == "NOT_AUTHORIZED" || apiErr.Type == "AUTHENTICATION_REQUIRED" ||
		status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrNotAuthorized, apiErr.Error())
	case apiErr.Type == "NOT_FOUND" || status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, apiErr.Error())
	default:
		return apiErr
	}
}
