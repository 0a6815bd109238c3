package inventory

import (
	"time"

	"stock-sync/core/database"
	"stock-sync/core/reconcile"
	"stock-sync/core/syncerr"
)

// Sync targets.
const (
	TargetAll    = "all"
	TargetOzon   = "ozon"
	TargetYandex = "yandex"
)

// Triggers recorded in the journal.
const (
	TriggerCLI  = "cli"
	TriggerHTTP = "http"
)

// Options controls one sync.
type Options struct {
	// DryRun reconciles but submits nothing.
	DryRun bool
	// TriggeredBy records who started the sync (cli, http).
	TriggeredBy string
}

// PassReport is the outcome of one adapter pass.
type PassReport struct {
	RunID      string            `json:"run_id"`
	Adapter    string            `json:"adapter"`
	Status     string            `json:"status"`
	ErrorKind  string            `json:"error_kind,omitempty"`
	Error      string            `json:"error,omitempty"`
	Summary    reconcile.Summary `json:"summary"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
}

// Report is the outcome of one sync across marketplaces.
type Report struct {
	ID          string       `json:"id"`
	Target      string       `json:"target"`
	DryRun      bool         `json:"dry_run"`
	TriggeredBy string       `json:"triggered_by"`
	FeedRows    int          `json:"feed_rows"`
	Passes      []PassReport `json:"passes"`
	// Skipped lists adapters not run because an earlier scheme of the same marketplace failed.
	Skipped    []string  `json:"skipped,omitempty"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	// ReportKey is the storage key the report was archived under.
	ReportKey string `json:"report_key,omitempty"`
}

// Failed reports whether any part of the sync failed.
func (r *Report) Failed() bool {
	if r.Error != "" {
		return true
	}
	for _, p := range r.Passes {
		if p.Status == database.StatusFailed {
			return true
		}
	}
	return false
}

func newPassReport(runID, adapter string, res *reconcile.Result, err error, started, finished time.Time) PassReport {
	p := PassReport{
		RunID:      runID,
		Adapter:    adapter,
		Status:     database.StatusOK,
		StartedAt:  started,
		FinishedAt: finished,
	}
	if res != nil {
		p.Summary = res.Summary()
	} else {
		p.Summary.Target = adapter
	}
	if err != nil {
		p.Status = database.StatusFailed
		p.ErrorKind = syncerr.KindOf(err).String()
		p.Error = err.Error()
	}
	return p
}

// journalRun converts a pass into a journal row.
func journalRun(r *Report, p PassReport) *database.Run {
	s := p.Summary
	return &database.Run{
		ID:            p.RunID,
		BatchID:       r.ID,
		TriggeredBy:   r.TriggeredBy,
		Target:        p.Adapter,
		DryRun:        r.DryRun,
		Status:        p.Status,
		ErrorKind:     p.ErrorKind,
		Error:         p.Error,
		FeedRows:      r.FeedRows,
		Identifiers:   s.Identifiers,
		StockRecords:  s.StockRecords,
		NonZeroStocks: s.NonZeroStocks,
		PriceRecords:  s.PriceRecords,
		StockBatches:  s.StockBatches,
		PriceBatches:  s.PriceBatches,
		StockAccepted: s.StockAck.Accepted,
		StockRejected: s.StockAck.Rejected,
		PriceAccepted: s.PriceAck.Accepted,
		PriceRejected: s.PriceAck.Rejected,
		StartedAt:     p.StartedAt,
		FinishedAt:    p.FinishedAt,
	}
}
