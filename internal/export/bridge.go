package export

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/uddict/dictation-app/cli/internal/record"
)

// ErrExportInFlight is returned when an export starts while another from the
// same bridge is still pending.
var ErrExportInFlight = errors.New("an export is already in progress")

// Document is everything that crosses the export boundary.
type Document struct {
	Title  string
	Record *record.Branch
}

// Result describes a finished export.
type Result struct {
	// Location is where the document ended up (file path or URL).
	Location string
	Format   string
}

// Exporter turns a document into an artifact.
type Exporter interface {
	Export(ctx context.Context, doc Document) (Result, error)
}

// ExporterFunc adapts a function to Exporter.
type ExporterFunc func(ctx context.Context, doc Document) (Result, error)

// Export calls f.
func (f ExporterFunc) Export(ctx context.Context, doc Document) (Result, error) {
	return f(ctx, doc)
}

// Bridge hands snapshots to an exporter one at a time. The app shares one
// bridge between its screens.
type Bridge struct {
	exporter Exporter
	sem      *semaphore.Weighted
	pending  atomic.Bool
	logger   *zap.Logger
}

// NewBridge wraps exporter. A nil logger discards logs.
func NewBridge(exporter Exporter, logger *zap.Logger) *Bridge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bridge{
		exporter: exporter,
		sem:      semaphore.NewWeighted(1),
		logger:   logger,
	}
}

// Pending reports whether an export is running.
func (b *Bridge) Pending() bool {
	return b.pending.Load()
}

// Export sends snapshot under title to the exporter. A call made while
// another is pending fails with ErrExportInFlight rather than waiting.
func (b *Bridge) Export(ctx context.Context, snapshot *record.Branch, title string) (Result, error) {
	if b.exporter == nil {
		return Result{}, fmt.Errorf("export: no document exporter configured")
	}
	if snapshot == nil {
		return Result{}, fmt.Errorf("export: no record loaded")
	}
	if !b.sem.TryAcquire(1) {
		b.logger.Info("export rejected", zap.String("title", title))
		return Result{}, ErrExportInFlight
	}
	b.pending.Store(true)
	defer func() {
		b.pending.Store(false)
		b.sem.Release(1)
	}()

	start := time.Now()
	b.logger.Info("export started", zap.String("title", title))
	res, err := b.exporter.Export(ctx, Document{Title: title, Record: snapshot})
	if err != nil {
		b.logger.Warn("export failed",
			zap.String("title", title),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return Result{}, fmt.Errorf("generate %s: %w", title, err)
	}
	b.logger.Info("export finished",
		zap.String("title", title),
		zap.String("location", res.Location),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}
