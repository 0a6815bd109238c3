package feed

import (
	"context"
	"fmt"
	"time"

	"stock-sync/core/reconcile"

	"go.uber.org/zap"
)

// Loader turns a Source into supplier rows.
type Loader struct {
	source Source
	cfg    Config
	logger *zap.Logger
}

// NewLoader creates a Loader reading from source.
func NewLoader(source Source, cfg Config, logger *zap.Logger) *Loader {
	return &Loader{source: source, cfg: cfg, logger: logger}
}

// Load fetches the archive, extracts the sheet and parses its rows.
// Nothing is written to disk.
func (l *Loader) Load(ctx context.Context) ([]reconcile.SupplierRow, error) {
	start := time.Now()

	data, err := l.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed from %s: %w", l.source.Name(), err)
	}

	name, sheet, err := extractSheet(data, l.cfg.Member)
	if err != nil {
		return nil, err
	}

	cells, err := readSheet(name, sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", name, err)
	}

	rows, err := parseRows(cells, l.cfg)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", name, err)
	}

	l.logger.Info("Feed loaded",
		zap.String("source", l.source.Name()),
		zap.String("sheet", name),
		zap.Int("archive_bytes", len(data)),
		zap.Int("rows", len(rows)),
		zap.Duration("duration", time.Since(start)),
	)
	return rows, nil
}
