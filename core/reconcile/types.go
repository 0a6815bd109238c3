package reconcile

import "time"

// SupplierRow is one line of the supplier stock sheet.
// All fields are kept as the sheet spells them.
type SupplierRow struct {
	// Code is the merchant product code, matched against marketplace identifiers.
	Code string `json:"code"`

	// Quantity is either an integer, ">10" or "1" (see ResolveQuantity).
	Quantity string `json:"quantity"`

	// Price is loosely formatted, e.g. "5'990.00 руб." (see NormalizePrice).
	Price string `json:"price"`
}

// StockRecord is the stock to report for one marketplace identifier.
type StockRecord struct {
	OfferID string `json:"offer_id"`
	Stock   int    `json:"stock"`
}

// PriceRecord is the price to report for one marketplace identifier.
// Price holds digits only and may be empty when the feed price was malformed.
type PriceRecord struct {
	OfferID string `json:"offer_id"`
	Price   string `json:"price"`
}

// Ack aggregates what the marketplace acknowledged for submitted records.
type Ack struct {
	// Accepted counts records the marketplace took.
	Accepted int `json:"accepted"`

	// Rejected counts records the marketplace answered with a per-item error.
	// A rejected item does not fail the batch.
	Rejected int `json:"rejected"`
}

// Add returns the sum of two acknowledgements.
func (a Ack) Add(b Ack) Ack {
	return Ack{Accepted: a.Accepted + b.Accepted, Rejected: a.Rejected + b.Rejected}
}

// Options controls a sync pass.
type Options struct {
	// DryRun reconciles but submits nothing.
	DryRun bool

	// Now stamps the pass start; nil means time.Now.
	Now func() time.Time
}

// Result is the outcome of one sync pass against one adapter.
type Result struct {
	// Target is the adapter name, e.g. "ozon" or "yandex/fbs".
	Target string `json:"target"`

	// DryRun is true when nothing was submitted.
	DryRun bool `json:"dry_run"`

	// Identifiers is the number of distinct identifiers the marketplace listed.
	Identifiers int `json:"identifiers"`

	// Stocks covers every listed identifier exactly once.
	Stocks []StockRecord `json:"-"`

	// NonZero is the subset of Stocks with a non-zero quantity, kept for reporting.
	NonZero []StockRecord `json:"-"`

	// Prices covers identifiers present in both the feed and the marketplace.
	Prices []PriceRecord `json:"-"`

	// StockBatches and PriceBatches count successfully submitted chunks.
	StockBatches int `json:"stock_batches"`
	PriceBatches int `json:"price_batches"`

	StockAck Ack `json:"stock_ack"`
	PriceAck Ack `json:"price_ack"`
}

// Summary provides aggregate counts of a Result.
type Summary struct {
	Target        string `json:"target"`
	DryRun        bool   `json:"dry_run"`
	Identifiers   int    `json:"identifiers"`
	StockRecords  int    `json:"stock_records"`
	NonZeroStocks int    `json:"non_zero_stocks"`
	PriceRecords  int    `json:"price_records"`
	StockBatches  int    `json:"stock_batches"`
	PriceBatches  int    `json:"price_batches"`
	StockAck      Ack    `json:"stock_ack"`
	PriceAck      Ack    `json:"price_ack"`
}

// Summary returns the aggregate counts of r.
func (r *Result) Summary() Summary {
	return Summary{
		Target:        r.Target,
		DryRun:        r.DryRun,
		Identifiers:   r.Identifiers,
		StockRecords:  len(r.Stocks),
		NonZeroStocks: len(r.NonZero),
		PriceRecords:  len(r.Prices),
		StockBatches:  r.StockBatches,
		PriceBatches:  r.PriceBatches,
		StockAck:      r.StockAck,
		PriceAck:      r.PriceAck,
	}
}
