package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stock-sync/core/database"
	"stock-sync/core/reconcile"
	"stock-sync/core/syncerr"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var errJournalDisabled = errors.New("run journal is disabled")

// FeedLoader provides the supplier rows of one sync.
type FeedLoader interface {
	Load(ctx context.Context) ([]reconcile.SupplierRow, error)
}

// Journal records and lists sync runs.
type Journal interface {
	Record(ctx context.Context, run *database.Run) error
	Recent(ctx context.Context, limit int) ([]database.Run, error)
}

// Marketplace is a named group of adapters synced in order.
type Marketplace struct {
	Name     string
	Adapters []reconcile.Adapter
}

// Service runs syncs.
type Service struct {
	feed         FeedLoader
	marketplaces []Marketplace
	journal      Journal
	archive      *Archive
	logger       *zap.Logger
	group        singleflight.Group
	now          func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithJournal records every pass in j.
func WithJournal(j Journal) Option {
	return func(s *Service) { s.journal = j }
}

// WithArchive uploads every report to a.
func WithArchive(a *Archive) Option {
	return func(s *Service) { s.archive = a }
}

// NewService creates a Service syncing feed into marketplaces.
func NewService(feed FeedLoader, marketplaces []Marketplace, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		feed:         feed,
		marketplaces: marketplaces,
		logger:       logger,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Targets returns the accepted sync targets.
func (s *Service) Targets() []string {
	targets := []string{TargetAll}
	for _, m := range s.marketplaces {
		targets = append(targets, m.Name)
	}
	return targets
}

// HasJournal reports whether runs are journalled.
func (s *Service) HasJournal() bool {
	return s.journal != nil
}

// Sync runs target ("all" or a marketplace name).
//
// The feed is loaded once. Concurrent calls for the same target and mode share
// one execution and its result. The returned Report is non-nil unless the
// target is invalid; the error is the first failure encountered.
func (s *Service) Sync(ctx context.Context, target string, opts Options) (*Report, error) {
	// Joined callers share the report, so it must not alias caller memory.
	target = strings.Clone(target)
	selected, err := s.selectMarketplaces(target)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s:%t", target, opts.DryRun)
	v, err, shared := s.group.Do(key, func() (any, error) {
		return s.run(ctx, target, selected, opts)
	})
	if shared {
		s.logger.Info("Joined running sync", zap.String("target", target))
	}
	return v.(*Report), err
}

func (s *Service) selectMarketplaces(target string) ([]Marketplace, error) {
	if target == TargetAll {
		if len(s.marketplaces) == 0 {
			return nil, syncerr.InvalidArgument("sync", "no marketplace is configured")
		}
		return s.marketplaces, nil
	}
	for _, m := range s.marketplaces {
		if m.Name == target {
			return []Marketplace{m}, nil
		}
	}
	return nil, syncerr.InvalidArgument("sync", "unknown or unconfigured target %q (want one of %v)", target, s.Targets())
}

func (s *Service) run(ctx context.Context, target string, marketplaces []Marketplace, opts Options) (*Report, error) {
	report := &Report{
		ID:          uuid.NewString(),
		Target:      target,
		DryRun:      opts.DryRun,
		TriggeredBy: opts.TriggeredBy,
		StartedAt:   s.now().UTC(),
	}
	log := s.logger.With(zap.String("sync_id", report.ID), zap.String("target", target), zap.Bool("dry_run", opts.DryRun))
	log.Info("Sync started")

	firstErr := s.runMarketplaces(ctx, log, report, marketplaces, opts)
	if firstErr != nil {
		report.ErrorKind = syncerr.KindOf(firstErr).String()
		report.Error = firstErr.Error()
	}
	report.FinishedAt = s.now().UTC()

	s.archiveReport(ctx, log, report)

	if firstErr != nil {
		log.Error("Sync failed", zap.String("kind", report.ErrorKind), zap.Error(firstErr))
	} else {
		log.Info("Sync finished", zap.Int("passes", len(report.Passes)), zap.Duration("duration", report.FinishedAt.Sub(report.StartedAt)))
	}
	return report, firstErr
}

// runMarketplaces loads the feed and runs every marketplace, returning the first error.
func (s *Service) runMarketplaces(ctx context.Context, log *zap.Logger, report *Report, marketplaces []Marketplace, opts Options) error {
	rows, err := s.feed.Load(ctx)
	if err != nil {
		return fmt.Errorf("load feed: %w", err)
	}
	report.FeedRows = len(rows)

	var firstErr error
	for _, m := range marketplaces {
		for i, adapter := range m.Adapters {
			pass := s.runAdapter(ctx, log, report, adapter, rows, opts)
			report.Passes = append(report.Passes, pass.report)
			if pass.err == nil {
				continue
			}
			if firstErr == nil {
				firstErr = pass.err
			}
			var skipped []string
			for _, rest := range m.Adapters[i+1:] {
				skipped = append(skipped, rest.Name())
			}
			if len(skipped) > 0 {
				report.Skipped = append(report.Skipped, skipped...)
				log.Warn("Skipping remaining schemes", zap.String("marketplace", m.Name), zap.Strings("skipped", skipped))
			}
			break
		}
	}
	return firstErr
}

type passOutcome struct {
	report PassReport
	err    error
}

func (s *Service) runAdapter(ctx context.Context, log *zap.Logger, report *Report, adapter reconcile.Adapter, rows []reconcile.SupplierRow, opts Options) passOutcome {
	name := adapter.Name()
	log = log.With(zap.String("adapter", name))

	started := s.now().UTC()
	res, err := reconcile.Run(ctx, adapter, rows, reconcile.Options{DryRun: opts.DryRun})
	pass := newPassReport(uuid.NewString(), name, res, err, started, s.now().UTC())

	if err != nil {
		log.Error("Pass failed", zap.String("kind", pass.ErrorKind), zap.Error(err))
	} else {
		sum := pass.Summary
		log.Info("Pass finished",
			zap.Int("identifiers", sum.Identifiers),
			zap.Int("stocks", sum.StockRecords),
			zap.Int("non_zero", sum.NonZeroStocks),
			zap.Int("prices", sum.PriceRecords),
			zap.Int("stock_batches", sum.StockBatches),
			zap.Int("price_batches", sum.PriceBatches),
			zap.Int("rejected", sum.StockAck.Rejected+sum.PriceAck.Rejected),
		)
	}

	if s.journal != nil {
		if jerr := s.journal.Record(ctx, journalRun(report, pass)); jerr != nil {
			log.Warn("Failed to journal run", zap.Error(jerr))
		}
	}
	return passOutcome{report: pass, err: err}
}

func (s *Service) archiveReport(ctx context.Context, log *zap.Logger, report *Report) {
	if s.archive == nil {
		return
	}
	key, err := s.archive.Upload(ctx, report)
	if err != nil {
		log.Warn("Failed to archive report", zap.Error(err))
		return
	}
	report.ReportKey = key

	removed, err := s.archive.Prune(ctx)
	if err != nil {
		log.Warn("Failed to prune reports", zap.Error(err))
	}
	if removed > 0 {
		log.Debug("Pruned old reports", zap.Int("removed", removed))
	}
}

// Runs lists the most recent journalled runs, newest first.
func (s *Service) Runs(ctx context.Context, limit int) ([]database.Run, error) {
	if s.journal == nil {
		return nil, errJournalDisabled
	}
	return s.journal.Recent(ctx, limit)
}
