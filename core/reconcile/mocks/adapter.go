package mocks

import (
	"context"

	"stock-sync/core/reconcile"

	"github.com/stretchr/testify/mock"
)

// Adapter is a mock implementation of reconcile.Adapter
type Adapter struct {
	mock.Mock
}

func (m *Adapter) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *Adapter) ListIdentifiers(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if ids, ok := args.Get(0).([]string); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Adapter) StockBatchSize() int {
	args := m.Called()
	return args.Int(0)
}

func (m *Adapter) PriceBatchSize() int {
	args := m.Called()
	return args.Int(0)
}

func (m *Adapter) SubmitStocks(ctx context.Context, stocks []reconcile.StockRecord) (reconcile.Ack, error) {
	args := m.Called(ctx, stocks)
	return args.Get(0).(reconcile.Ack), args.Error(1)
}

func (m *Adapter) SubmitPrices(ctx context.Context, prices []reconcile.PriceRecord) (reconcile.Ack, error) {
	args := m.Called(ctx, prices)
	return args.Get(0).(reconcile.Ack), args.Error(1)
}
