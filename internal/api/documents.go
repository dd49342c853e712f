package api

import (
	"context"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/uddict/dictation-app/cli/internal/record"
)

// GenerateDocument asks the service to render record under title.
func (c *Client) GenerateDocument(ctx context.Context, title string, rec *record.Branch) (*DocumentResult, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("document title is required")
	}
	data, err := c.post(ctx, "/api/documents", GenerateDocumentInput{Title: title, Record: rec})
	if err != nil {
		return nil, err
	}
	return decodeOne[DocumentResult](data)
}

// Health calls /api/health and returns its status string.
func (c *Client) Health(ctx context.Context) (string, error) {
	data, err := c.get(ctx, "/api/health")
	if err != nil {
		return "", err
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return payload.Status, nil
}
