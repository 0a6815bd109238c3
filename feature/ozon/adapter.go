package ozon

import (
	"context"

	"stock-sync/core/reconcile"

	"go.uber.org/zap"
)

// Name is the adapter name used in logs and reports.
const Name = "ozon"

// Adapter exposes a Client as a reconcile.Adapter.
type Adapter struct {
	client         *Client
	logger         *zap.Logger
	stockBatchSize int
	priceBatchSize int
}

// NewAdapter creates an Adapter over client with the batch sizes from cfg.
func NewAdapter(client *Client, cfg Config, logger *zap.Logger) *Adapter {
	return &Adapter{
		client:         client,
		logger:         logger.With(zap.String("marketplace", Name)),
		stockBatchSize: cfg.StockBatchSize,
		priceBatchSize: cfg.PriceBatchSize,
	}
}

// Name returns "ozon".
func (a *Adapter) Name() string { return Name }

// StockBatchSize returns the record limit of one stock import.
func (a *Adapter) StockBatchSize() int { return a.stockBatchSize }

// PriceBatchSize returns the record limit of one price import.
func (a *Adapter) PriceBatchSize() int { return a.priceBatchSize }

// ListIdentifiers returns the offer ids of every product in the account.
func (a *Adapter) ListIdentifiers(ctx context.Context) ([]string, error) {
	return a.client.ListOfferIDs(ctx)
}

// SubmitStocks imports one batch of stocks; rejected items are counted, not fatal.
func (a *Adapter) SubmitStocks(ctx context.Context, stocks []reconcile.StockRecord) (reconcile.Ack, error) {
	updates := make([]StockUpdate, len(stocks))
	for i, s := range stocks {
		updates[i] = StockUpdate{OfferID: s.OfferID, Stock: s.Stock}
	}

	results, err := a.client.UpdateStocks(ctx, updates)
	if err != nil {
		return reconcile.Ack{}, err
	}
	return a.acknowledge("stocks", results), nil
}

// SubmitPrices imports one batch of prices as-is, in rubles with no old price.
func (a *Adapter) SubmitPrices(ctx context.Context, prices []reconcile.PriceRecord) (reconcile.Ack, error) {
	updates := make([]PriceUpdate, len(prices))
	for i, p := range prices {
		updates[i] = PriceUpdate{
			AutoActionEnabled: autoActionUnknown,
			CurrencyCode:      currencyRUB,
			OfferID:           p.OfferID,
			OldPrice:          oldPriceNone,
			Price:             p.Price,
		}
	}

	results, err := a.client.UpdatePrices(ctx, updates)
	if err != nil {
		return reconcile.Ack{}, err
	}
	return a.acknowledge("prices", results), nil
}

// acknowledge counts per-item outcomes and logs every rejection.
func (a *Adapter) acknowledge(kind string, results []ItemResult) reconcile.Ack {
	var ack reconcile.Ack
	for _, r := range results {
		if !r.Rejected() {
			ack.Accepted++
			continue
		}
		ack.Rejected++
		fields := []zap.Field{
			zap.String("kind", kind),
			zap.String("offer_id", r.OfferID),
		}
		if len(r.Errors) > 0 {
			fields = append(fields,
				zap.String("code", r.Errors[0].Code),
				zap.String("reason", r.Errors[0].Message),
			)
		}
		a.logger.Warn("Item rejected", fields...)
	}
	return ack
}
