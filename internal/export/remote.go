package export

import (
	"context"

	"github.com/uddict/dictation-app/cli/internal/api"
)

// RemoteExporter sends documents to the document generation service.
type RemoteExporter struct {
	Client *api.Client
}

// Export implements Exporter.
func (r RemoteExporter) Export(ctx context.Context, doc Document) (Result, error) {
	res, err := r.Client.GenerateDocument(ctx, doc.Title, doc.Record)
	if err != nil {
		return Result{}, err
	}
	loc := res.URL
	if loc == "" {
		loc = res.ID
	}
	return Result{Location: loc, Format: FormatRemote}, nil
}

// New picks the exporter for a configured target: a non-empty serviceURL
// selects the document service, otherwise files are written to dir.
func New(serviceURL, apiKey, dir, format string) (Exporter, error) {
	if serviceURL != "" {
		return RemoteExporter{Client: api.NewClient(serviceURL, apiKey)}, nil
	}
	f, err := NormalizeFormat(format)
	if err != nil {
		return nil, err
	}
	return FileExporter{Dir: dir, Format: f}, nil
}
