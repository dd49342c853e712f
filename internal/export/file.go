package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/uddict/dictation-app/cli/internal/record"
)

// Formats lists the file formats FileExporter understands.
var Formats = []string{"json", "md", "svg", "png"}

// FormatRemote is reported for documents produced by the document service.
const FormatRemote = "remote"

// NormalizeFormat maps aliases onto a supported format.
func NormalizeFormat(format string) (string, error) {
	f := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
	switch f {
	case "", "svg":
		return "svg", nil
	case "markdown", "md":
		return "md", nil
	case "json", "png":
		return f, nil
	}
	return "", fmt.Errorf("unsupported format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// FileExporter writes documents into Dir as <slug(title)>.<format>.
type FileExporter struct {
	Dir    string
	Format string
}

// Export implements Exporter.
func (f FileExporter) Export(ctx context.Context, doc Document) (Result, error) {
	format, err := NormalizeFormat(f.Format)
	if err != nil {
		return Result{}, err
	}
	dir := f.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create export dir: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	path := filepath.Join(dir, Slug(doc.Title)+"."+format)

	switch format {
	case "png":
		err = writePNG(path, doc)
	default:
		var data []byte
		data, err = encode(format, doc)
		if err == nil {
			err = os.WriteFile(path, data, 0o644)
		}
	}
	if err != nil {
		return Result{}, fmt.Errorf("write %s: %w", format, err)
	}
	return Result{Location: path, Format: format}, nil
}

type jsonDocument struct {
	Title  string         `json:"title"`
	Record *record.Branch `json:"record"`
}

func encode(format string, doc Document) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(jsonDocument{Title: doc.Title, Record: doc.Record}, "", "  ")
	case "md":
		return []byte(Markdown(doc)), nil
	case "svg":
		var buf bytes.Buffer
		if err := writeSVG(&buf, doc); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unhandled format %q", format)
}
