package api

import "time"

// DefaultBaseURL is the document service the CLI targets when none is
// configured.
const DefaultBaseURL = "http://localhost:8000"

// NewDefaultClient builds a client pointed at the default document service.
func NewDefaultClient(apiKey string, timeout ...time.Duration) *Client {
	return NewClient(DefaultBaseURL, apiKey, timeout...)
}
