package reconcile

import (
	"context"
	"time"
)

// Adapter is the marketplace side of a sync pass.
// One adapter covers one account (and, for marketplaces with several fulfilment
// schemes, one scheme). Every method performs at most one outbound request,
// except ListIdentifiers which pages through the whole listing.
type Adapter interface {
	// Name identifies the adapter in logs and reports (e.g. "ozon", "yandex/fbs").
	Name() string

	// ListIdentifiers returns every identifier the account has registered.
	ListIdentifiers(ctx context.Context) ([]string, error)

	// StockBatchSize is the maximum number of stock records per SubmitStocks call.
	StockBatchSize() int

	// PriceBatchSize is the maximum number of price records per SubmitPrices call.
	PriceBatchSize() int

	// SubmitStocks sends one batch of stock records.
	SubmitStocks(ctx context.Context, stocks []StockRecord) (Ack, error)

	// SubmitPrices sends one batch of price records.
	SubmitPrices(ctx context.Context, prices []PriceRecord) (Ack, error)
}

// PricePreparer is implemented by adapters that must check every price record
// before the first price batch is sent. Run calls it once per pass, after prices
// are reconciled and before any of them is submitted.
type PricePreparer interface {
	PreparePrices(prices []PriceRecord) error
}

type passStartKey struct{}

// WithPassStart returns ctx carrying the start time of the current pass.
func WithPassStart(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, passStartKey{}, t)
}

// PassStart returns the pass start time stored by Run, if any.
func PassStart(ctx context.Context) (time.Time, bool) {
	t, ok := ctx.Value(passStartKey{}).(time.Time)
	return t, ok
}
