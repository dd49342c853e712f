package api

import "github.com/uddict/dictation-app/cli/internal/record"

// --- API Response Envelope ---

type apiResponse[T any] struct {
	Data  T       `json:"data"`
	Error *apiErr `json:"error,omitempty"`
}

type apiErr struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// --- Documents ---

// GenerateDocumentInput is the body sent to the document service.
type GenerateDocumentInput struct {
	Title  string         `json:"title"`
	Record *record.Branch `json:"record"`
}

// DocumentResult describes a generated document.
type DocumentResult struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Pages int    `json:"pages"`
}
