package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/glowdesk/salon-manager/internal/models"
)

// Client is the boundary to an external text-generation API. The module
// owns only the context string it sends; everything past the HTTP call
// is someone else's problem.
type Client struct {
	url  string
	key  string
	http *http.Client
}

func New(url, key string) *Client {
	return &Client{
		url:  url,
		key:  key,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.url != ""
}

type generateRequest struct {
	Prompt  string `json:"prompt"`
	Context string `json:"context"`
}

type generateResponse struct {
	Text string `json:"text"`
}

func (c *Client) GenerateText(ctx context.Context, prompt, contextStr string) (string, error) {
	if !c.IsConfigured() {
		return "", fmt.Errorf("assistant not configured")
	}

	body, err := json.Marshal(generateRequest{Prompt: prompt, Context: contextStr})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant: status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Text, nil
}

// BuildContext summarizes low stock and today's sales for the prompt.
func BuildContext(lowStock []models.InventoryItem, todaySales []models.Sale) string {
	var b strings.Builder

	b.WriteString("Low stock items:\n")
	if len(lowStock) == 0 {
		b.WriteString("- none\n")
	}
	for _, item := range lowStock {
		fmt.Fprintf(&b, "- %s: %d left (reorder at %d)\n", item.Name, item.Quantity, item.LowStockLevel)
	}

	total := 0
	for _, s := range todaySales {
		total += s.Total
	}
	fmt.Fprintf(&b, "Today's sales: %d transactions, total ₹%d\n", len(todaySales), total)

	return b.String()
}
