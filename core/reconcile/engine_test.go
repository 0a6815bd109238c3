package reconcile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stock-sync/core/reconcile"
	"stock-sync/core/reconcile/mocks"
	"stock-sync/core/syncerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdapter(ids []string, stockSize, priceSize int) *mocks.Adapter {
	a := new(mocks.Adapter)
	a.On("Name").Return("test")
	a.On("ListIdentifiers", mock.Anything).Return(ids, nil)
	a.On("StockBatchSize").Return(stockSize).Maybe()
	a.On("PriceBatchSize").Return(priceSize).Maybe()
	return a
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	rows := []reconcile.SupplierRow{
		{Code: "A", Quantity: ">10", Price: "1'000.00 руб."},
		{Code: "C", Quantity: "2", Price: "250.50 руб."},
		{Code: "D", Quantity: "7", Price: "9.00 руб."},
	}

	t.Run("SubmitsEverythingInChunks", func(t *testing.T) {
		a := newAdapter([]string{"A", "B", "C"}, 2, 1)
		a.On("SubmitStocks", mock.Anything, []reconcile.StockRecord{{OfferID: "A", Stock: 100}, {OfferID: "C", Stock: 2}}).
			Return(reconcile.Ack{Accepted: 2}, nil).Once()
		a.On("SubmitStocks", mock.Anything, []reconcile.StockRecord{{OfferID: "B", Stock: 0}}).
			Return(reconcile.Ack{Accepted: 1}, nil).Once()
		a.On("SubmitPrices", mock.Anything, []reconcile.PriceRecord{{OfferID: "A", Price: "1000"}}).
			Return(reconcile.Ack{Accepted: 1}, nil).Once()
		a.On("SubmitPrices", mock.Anything, []reconcile.PriceRecord{{OfferID: "C", Price: "250"}}).
			Return(reconcile.Ack{Rejected: 1}, nil).Once()

		res, err := reconcile.Run(ctx, a, rows, reconcile.Options{})
		require.NoError(t, err)
		a.AssertExpectations(t)

		assert.Equal(t, "test", res.Target)
		assert.Equal(t, 3, res.Identifiers)
		assert.Equal(t, 2, res.StockBatches)
		assert.Equal(t, 2, res.PriceBatches)
		assert.Equal(t, reconcile.Ack{Accepted: 3}, res.StockAck)
		assert.Equal(t, reconcile.Ack{Accepted: 1, Rejected: 1}, res.PriceAck)
		assert.Len(t, res.NonZero, 2)

		sum := res.Summary()
		assert.Equal(t, 3, sum.StockRecords)
		assert.Equal(t, 2, sum.PriceRecords)
		assert.Equal(t, 2, sum.NonZeroStocks)
	})

	t.Run("PricesSeeTheFullListing", func(t *testing.T) {
		a := newAdapter([]string{"A"}, 10, 10)
		a.On("SubmitStocks", mock.Anything, mock.Anything).Return(reconcile.Ack{Accepted: 1}, nil)
		a.On("SubmitPrices", mock.Anything, []reconcile.PriceRecord{{OfferID: "A", Price: "1000"}}).
			Return(reconcile.Ack{Accepted: 1}, nil).Once()

		res, err := reconcile.Run(ctx, a, rows, reconcile.Options{})
		require.NoError(t, err)
		assert.Len(t, res.Prices, 1)
		a.AssertExpectations(t)
	})

	t.Run("DryRunSubmitsNothing", func(t *testing.T) {
		a := newAdapter([]string{"A", "B"}, 10, 10)

		res, err := reconcile.Run(ctx, a, rows, reconcile.Options{DryRun: true})
		require.NoError(t, err)
		assert.True(t, res.DryRun)
		assert.Len(t, res.Stocks, 2)
		assert.Len(t, res.Prices, 1)
		assert.Zero(t, res.StockBatches)
		a.AssertNotCalled(t, "SubmitStocks", mock.Anything, mock.Anything)
		a.AssertNotCalled(t, "SubmitPrices", mock.Anything, mock.Anything)
	})

	t.Run("FailingChunkAbortsPass", func(t *testing.T) {
		a := newAdapter([]string{"A", "B", "C"}, 1, 10)
		a.On("SubmitStocks", mock.Anything, []reconcile.StockRecord{{OfferID: "A", Stock: 100}}).
			Return(reconcile.Ack{Accepted: 1}, nil).Once()
		a.On("SubmitStocks", mock.Anything, []reconcile.StockRecord{{OfferID: "C", Stock: 2}}).
			Return(reconcile.Ack{}, syncerr.HTTPStatus("submit", 500, nil)).Once()

		res, err := reconcile.Run(ctx, a, rows, reconcile.Options{})
		require.Error(t, err)
		assert.True(t, syncerr.Is(err, syncerr.KindHTTPStatus))
		assert.Contains(t, err.Error(), "batch 2 of 3")
		require.NotNil(t, res)
		assert.Equal(t, 1, res.StockBatches)
		a.AssertNumberOfCalls(t, "SubmitStocks", 2)
		a.AssertNotCalled(t, "SubmitPrices", mock.Anything, mock.Anything)
	})

	t.Run("ListingFailure", func(t *testing.T) {
		a := new(mocks.Adapter)
		a.On("Name").Return("test")
		a.On("ListIdentifiers", mock.Anything).Return(nil, syncerr.Transport("list", errors.New("connection refused")))

		res, err := reconcile.Run(ctx, a, rows, reconcile.Options{})
		assert.Nil(t, res)
		assert.True(t, syncerr.Is(err, syncerr.KindTransport))
	})

	t.Run("BadQuantitySubmitsNothing", func(t *testing.T) {
		a := newAdapter([]string{"A"}, 10, 10)
		bad := []reconcile.SupplierRow{{Code: "A", Quantity: "abc"}}

		res, err := reconcile.Run(ctx, a, bad, reconcile.Options{})
		assert.True(t, syncerr.Is(err, syncerr.KindDataFormat))
		require.NotNil(t, res)
		assert.Empty(t, res.Stocks)
		a.AssertNotCalled(t, "SubmitStocks", mock.Anything, mock.Anything)
	})

	t.Run("InvalidBatchSize", func(t *testing.T) {
		a := newAdapter([]string{"A"}, 0, 10)

		_, err := reconcile.Run(ctx, a, rows, reconcile.Options{})
		assert.True(t, syncerr.Is(err, syncerr.KindInvalidArgument))
	})
}

// preparingAdapter adds a price check to the mock adapter.
type preparingAdapter struct {
	*mocks.Adapter
	prepare func([]reconcile.PriceRecord) error
	seen    []reconcile.PriceRecord
}

func (p *preparingAdapter) PreparePrices(prices []reconcile.PriceRecord) error {
	p.seen = prices
	return p.prepare(prices)
}

func TestRun_PreparePrices(t *testing.T) {
	ctx := context.Background()
	rows := []reconcile.SupplierRow{
		{Code: "A", Quantity: "3", Price: "100.00 руб."},
		{Code: "B", Quantity: "5", Price: "руб."},
	}

	t.Run("FailureStopsBeforeFirstPriceBatch", func(t *testing.T) {
		m := newAdapter([]string{"A", "B"}, 1, 1)
		m.On("SubmitStocks", mock.Anything, mock.Anything).Return(reconcile.Ack{Accepted: 1}, nil)
		bad := syncerr.DataFormat("price of B", "price", "", errors.New("not a number"))
		a := &preparingAdapter{Adapter: m, prepare: func([]reconcile.PriceRecord) error { return bad }}

		res, err := reconcile.Run(ctx, a, rows, reconcile.Options{})
		require.ErrorIs(t, err, bad)
		assert.Contains(t, err.Error(), "prepare prices")
		require.NotNil(t, res)
		assert.Equal(t, 2, res.StockBatches)
		assert.Zero(t, res.PriceBatches)
		assert.Len(t, a.seen, 2)
		m.AssertNotCalled(t, "SubmitPrices", mock.Anything, mock.Anything)
	})

	t.Run("RunsInDryRun", func(t *testing.T) {
		m := newAdapter([]string{"A", "B"}, 1, 1)
		a := &preparingAdapter{Adapter: m, prepare: func([]reconcile.PriceRecord) error {
			return syncerr.DataFormat("price of B", "price", "", nil)
		}}

		_, err := reconcile.Run(ctx, a, rows, reconcile.Options{DryRun: true})
		assert.True(t, syncerr.Is(err, syncerr.KindDataFormat))
		m.AssertNotCalled(t, "SubmitStocks", mock.Anything, mock.Anything)
	})
}

func TestRun_PassStart(t *testing.T) {
	start := time.Date(2024, 3, 5, 7, 8, 9, 0, time.UTC)
	rows := []reconcile.SupplierRow{
		{Code: "A", Quantity: "3", Price: "1"},
		{Code: "B", Quantity: "4", Price: "2"},
	}

	var stamps []time.Time
	a := newAdapter([]string{"A", "B"}, 1, 1)
	a.On("SubmitStocks", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			got, ok := reconcile.PassStart(args.Get(0).(context.Context))
			assert.True(t, ok)
			stamps = append(stamps, got)
		}).
		Return(reconcile.Ack{Accepted: 1}, nil)
	a.On("SubmitPrices", mock.Anything, mock.Anything).Return(reconcile.Ack{Accepted: 1}, nil)

	clock := start
	_, err := reconcile.Run(context.Background(), a, rows, reconcile.Options{Now: func() time.Time {
		defer func() { clock = clock.Add(time.Minute) }()
		return clock
	}})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{start, start}, stamps)

	_, ok := reconcile.PassStart(context.Background())
	assert.False(t, ok)
}
