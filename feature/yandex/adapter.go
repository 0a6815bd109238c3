package yandex

import (
	"context"
	"strconv"
	"time"

	"stock-sync/core/reconcile"
	"stock-sync/core/syncerr"

	"go.uber.org/zap"
)

var _ reconcile.PricePreparer = (*Adapter)(nil)

// Adapter exposes one fulfilment scheme of a Client as a reconcile.Adapter.
type Adapter struct {
	client         *Client
	scheme         Scheme
	logger         *zap.Logger
	stockBatchSize int
	priceBatchSize int
	now            func() time.Time
}

// NewAdapter creates an Adapter for scheme with the batch sizes from cfg.
func NewAdapter(client *Client, scheme Scheme, cfg Config, logger *zap.Logger) *Adapter {
	a := &Adapter{
		client:         client,
		scheme:         scheme,
		stockBatchSize: cfg.StockBatchSize,
		priceBatchSize: cfg.PriceBatchSize,
		now:            time.Now,
	}
	a.logger = logger.With(zap.String("marketplace", a.Name()))
	return a
}

// Adapters returns one Adapter per enabled scheme, FBS first.
func Adapters(client *Client, cfg Config, logger *zap.Logger) []*Adapter {
	schemes := cfg.Schemes()
	out := make([]*Adapter, 0, len(schemes))
	for _, s := range schemes {
		out = append(out, NewAdapter(client, s, cfg, logger))
	}
	return out
}

// Name returns "yandex/" followed by the scheme name.
func (a *Adapter) Name() string { return "yandex/" + a.scheme.Name }

// StockBatchSize returns the SKU limit of one stock update.
func (a *Adapter) StockBatchSize() int { return a.stockBatchSize }

// PriceBatchSize returns the offer limit of one price update.
func (a *Adapter) PriceBatchSize() int { return a.priceBatchSize }

// ListIdentifiers returns the offer ids of the scheme's campaign.
func (a *Adapter) ListIdentifiers(ctx context.Context) ([]string, error) {
	return a.client.ListOfferIDs(ctx, a.scheme.CampaignID)
}

// SubmitStocks reports every record as FIT stock in the scheme's warehouse.
// Records are stamped with the pass start, so every batch of a pass carries the
// same updatedAt; outside a pass the adapter clock is used.
func (a *Adapter) SubmitStocks(ctx context.Context, stocks []reconcile.StockRecord) (reconcile.Ack, error) {
	stamp, ok := reconcile.PassStart(ctx)
	if !ok {
		stamp = a.now()
	}
	updatedAt := stamp.UTC().Format(updatedAtLayout)

	skus := make([]SKUStock, len(stocks))
	for i, s := range stocks {
		skus[i] = SKUStock{
			SKU:         s.OfferID,
			WarehouseID: a.scheme.WarehouseID,
			Items: []StockItem{{
				Count:     s.Stock,
				Type:      stockTypeFit,
				UpdatedAt: updatedAt,
			}},
		}
	}

	if err := a.client.UpdateStocks(ctx, a.scheme.CampaignID, skus); err != nil {
		return reconcile.Ack{}, err
	}
	a.logger.Debug("Stocks submitted", zap.Int("count", len(skus)))
	return reconcile.Ack{Accepted: len(skus)}, nil
}

// PreparePrices checks that every price converts to an integer, so a malformed
// price fails the pass before any price batch is sent.
func (a *Adapter) PreparePrices(prices []reconcile.PriceRecord) error {
	_, err := offerPrices(prices)
	return err
}

// SubmitPrices sends integer prices. A price that is not an integer (including
// the empty string left by a malformed feed price) fails the whole batch before
// anything is sent.
func (a *Adapter) SubmitPrices(ctx context.Context, prices []reconcile.PriceRecord) (reconcile.Ack, error) {
	offers, err := offerPrices(prices)
	if err != nil {
		return reconcile.Ack{}, err
	}

	if err := a.client.UpdatePrices(ctx, a.scheme.CampaignID, offers); err != nil {
		return reconcile.Ack{}, err
	}
	a.logger.Debug("Prices submitted", zap.Int("count", len(offers)))
	return reconcile.Ack{Accepted: len(offers)}, nil
}

func offerPrices(prices []reconcile.PriceRecord) ([]OfferPrice, error) {
	offers := make([]OfferPrice, len(prices))
	for i, p := range prices {
		value, err := strconv.Atoi(p.Price)
		if err != nil {
			return nil, syncerr.DataFormat("yandex price of "+p.OfferID, "price", p.Price, err)
		}
		offers[i] = OfferPrice{
			ID:    p.OfferID,
			Price: Price{Value: value, CurrencyID: currencyRUR},
		}
	}
	return offers, nil
}
