package database

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Run statuses.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Run is one journalled sync pass against one marketplace scheme.
type Run struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	BatchID       string    `gorm:"size:36;index" json:"batch_id"`
	TriggeredBy   string    `gorm:"size:16" json:"triggered_by"`
	Target        string    `gorm:"size:32;index" json:"target"`
	DryRun        bool      `json:"dry_run"`
	Status        string    `gorm:"size:16" json:"status"`
	ErrorKind     string    `gorm:"size:32" json:"error_kind,omitempty"`
	Error         string    `gorm:"type:text" json:"error,omitempty"`
	FeedRows      int       `json:"feed_rows"`
	Identifiers   int       `json:"identifiers"`
	StockRecords  int       `json:"stock_records"`
	NonZeroStocks int       `json:"non_zero_stocks"`
	PriceRecords  int       `json:"price_records"`
	StockBatches  int       `json:"stock_batches"`
	PriceBatches  int       `json:"price_batches"`
	StockAccepted int       `json:"stock_accepted"`
	StockRejected int       `json:"stock_rejected"`
	PriceAccepted int       `json:"price_accepted"`
	PriceRejected int       `json:"price_rejected"`
	StartedAt     time.Time `gorm:"index" json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
}

// TableName pins the journal table name.
func (Run) TableName() string {
	return "sync_runs"
}

// Journal persists sync runs.
type Journal struct {
	db *gorm.DB
}

// NewJournal creates a Journal over db.
func NewJournal(db *gorm.DB) *Journal {
	return &Journal{db: db}
}

// Migrate creates or updates the journal table.
func (j *Journal) Migrate(ctx context.Context) error {
	if err := j.db.WithContext(ctx).AutoMigrate(&Run{}); err != nil {
		return fmt.Errorf("migrate journal: %w", err)
	}
	return nil
}

// Record stores one run.
func (j *Journal) Record(ctx context.Context, run *Run) error {
	if err := j.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("record run %s: %w", run.ID, err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Run, error) {
	var runs []Run
	err := j.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// CheckSchema verifies that the journal table carries every column of Run.
func (j *Journal) CheckSchema(ctx context.Context) error {
	stmt := &gorm.Statement{DB: j.db}
	if err := stmt.Parse(&Run{}); err != nil {
		return fmt.Errorf("parse run model: %w", err)
	}

	columns, err := GetTableColumns(ctx, j.db, Run{}.TableName())
	if err != nil {
		return err
	}
	present := make([]string, len(columns))
	for i, c := range columns {
		present[i] = c.Field
	}

	var missing []string
	for _, name := range stmt.Schema.DBNames {
		if !slices.Contains(present, strings.ToLower(name)) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns: %s", Run{}.TableName(), strings.Join(missing, ", "))
	}
	return nil
}
