package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client talks to the spreadsheet-backed mirror endpoint: one logical tab
// per table, full-replace writes, one-call reads of the whole dataset.
// Every request carries a text/plain body so the browser-era contract
// (no CORS preflight) stays intact. Calls have no timeout; cancellation
// is the caller's context.
type Client struct {
	url  string
	http *http.Client
}

func New(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{},
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.url != ""
}

type writeRequest struct {
	Action string `json:"action"`
	Tab    string `json:"tab"`
	Data   any    `json:"data"`
}

type response struct {
	Status  string                       `json:"status"`
	Message string                       `json:"message"`
	Data    map[string][]map[string]any `json:"data"`
}

// Write fully replaces one tab's remote contents. Nested objects and
// arrays are encoded as JSON strings so each record flattens to one row.
// Failures are returned once; there is no retry.
func (c *Client) Write(ctx context.Context, tab string, records any) error {
	if !c.IsConfigured() {
		return fmt.Errorf("mirror not configured")
	}

	rows, err := flatten(records)
	if err != nil {
		return fmt.Errorf("flatten %s: %w", tab, err)
	}

	body, err := json.Marshal(writeRequest{Action: "write", Tab: tab, Data: rows})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("mirror write %s: status %d", tab, resp.StatusCode)
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("mirror write %s: decode response: %w", tab, err)
	}
	if out.Status != "success" {
		return fmt.Errorf("mirror write %s: %s", tab, out.Message)
	}
	return nil
}

// ReadAll fetches every tab's full contents in one call.
func (c *Client) ReadAll(ctx context.Context) (map[string][]map[string]any, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("mirror not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"?action=readAll", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mirror read: status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var out response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("mirror read: decode response: %w", err)
	}
	if out.Status != "success" {
		return nil, fmt.Errorf("mirror read: %s", out.Message)
	}
	return out.Data, nil
}

// flatten converts records into rows whose nested values are JSON strings.
func flatten(records any) ([]map[string]any, error) {
	raw, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}

	for _, row := range rows {
		for key, val := range row {
			switch val.(type) {
			case map[string]any, []any:
				enc, err := json.Marshal(val)
				if err != nil {
					return nil, err
				}
				row[key] = string(enc)
			}
		}
	}

	if rows == nil {
		rows = []map[string]any{}
	}
	return rows, nil
}
