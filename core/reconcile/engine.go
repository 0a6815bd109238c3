package reconcile

import (
	"context"
	"fmt"
	"time"

	"stock-sync/core/batch"
)

// Run performs one sync pass against adapter.
//
// The identifier listing is fetched once. Stocks are reconciled against a clone of it,
// prices against the original. Chunks are submitted sequentially in order and the
// first failing chunk aborts the pass. The returned Result is non-nil whenever the
// listing succeeded, including on later failures, so callers can report how far the
// pass got.
//
// Adapters implementing PricePreparer get the full price list before the first
// price batch, also in dry runs. Every submit call sees the pass start time
// through PassStart.
func Run(ctx context.Context, adapter Adapter, rows []SupplierRow, opts Options) (*Result, error) {
	name := adapter.Name()

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	ctx = WithPassStart(ctx, now())

	ids, err := adapter.ListIdentifiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: list identifiers: %w", name, err)
	}
	set := NewIdentifierSet(ids)

	result := &Result{
		Target:      name,
		DryRun:      opts.DryRun,
		Identifiers: set.Len(),
	}

	stocks, err := ReconcileStocks(rows, set.Clone())
	if err != nil {
		return result, fmt.Errorf("%s: reconcile stocks: %w", name, err)
	}
	result.Stocks = stocks
	result.NonZero = NonZero(stocks)

	if !opts.DryRun {
		result.StockBatches, result.StockAck, err = submitAll(ctx, stocks, adapter.StockBatchSize(), adapter.SubmitStocks)
		if err != nil {
			return result, fmt.Errorf("%s: submit stocks: %w", name, err)
		}
	}

	result.Prices = ReconcilePrices(rows, set)

	if p, ok := adapter.(PricePreparer); ok {
		if err := p.PreparePrices(result.Prices); err != nil {
			return result, fmt.Errorf("%s: prepare prices: %w", name, err)
		}
	}

	if !opts.DryRun {
		result.PriceBatches, result.PriceAck, err = submitAll(ctx, result.Prices, adapter.PriceBatchSize(), adapter.SubmitPrices)
		if err != nil {
			return result, fmt.Errorf("%s: submit prices: %w", name, err)
		}
	}

	return result, nil
}

// submitAll sends records in chunks of size and stops at the first failure.
// It returns the number of chunks that were sent successfully.
func submitAll[T any](ctx context.Context, records []T, size int, send func(context.Context, []T) (Ack, error)) (int, Ack, error) {
	chunks, err := batch.Chunk(records, size)
	if err != nil {
		return 0, Ack{}, err
	}

	total := batch.Count(len(records), size)
	var (
		sent int
		ack  Ack
	)
	for chunk := range chunks {
		a, err := send(ctx, chunk)
		if err != nil {
			return sent, ack, fmt.Errorf("batch %d of %d: %w", sent+1, total, err)
		}
		sent++
		ack = ack.Add(a)
	}
	return sent, ack, nil
}
