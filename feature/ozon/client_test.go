package ozon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"stock-sync/core/syncerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(url string) Config {
	return Config{
		BaseURL:        url,
		ClientID:       "42",
		APIKey:         "token",
		PageSize:       2,
		MaxPages:       10,
		StockBatchSize: 100,
		PriceBatchSize: 1000,
		TimeoutSeconds: 5,
	}
}

func TestClient_ListOfferIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("PagesUntilTotal", func(t *testing.T) {
		pages := map[string]string{
			"":   `{"result":{"items":[{"product_id":1,"offer_id":"A"},{"product_id":2,"offer_id":"B"}],"total":3,"last_id":"p2"}}`,
			"p2": `{"result":{"items":[{"product_id":3,"offer_id":"C"}],"total":3,"last_id":"p3"}}`,
		}
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v2/product/list", r.URL.Path)
			assert.Equal(t, "42", r.Header.Get("Client-Id"))
			assert.Equal(t, "token", r.Header.Get("Api-Key"))

			var req listRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "ALL", req.Filter.Visibility)
			assert.Equal(t, 2, req.Limit)

			body, ok := pages[req.LastID]
			require.True(t, ok, "unexpected last_id %q", req.LastID)
			_, _ = w.Write([]byte(body))
		}))
		defer server.Close()

		ids, err := NewClient(testConfig(server.URL)).ListOfferIDs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, ids)
		assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
	})

	t.Run("EmptyAccount", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"result":{"items":[],"total":0,"last_id":""}}`))
		}))
		defer server.Close()

		ids, err := NewClient(testConfig(server.URL)).ListOfferIDs(ctx)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("EmptyPageEndsListing", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				_, _ = w.Write([]byte(`{"result":{"items":[{"offer_id":"A"}],"total":5,"last_id":"x"}}`))
				return
			}
			_, _ = w.Write([]byte(`{"result":{"items":[],"total":5,"last_id":"x"}}`))
		}))
		defer server.Close()

		ids, err := NewClient(testConfig(server.URL)).ListOfferIDs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, ids)
	})

	t.Run("PageLimit", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			n := atomic.AddInt32(&calls, 1)
			fmt.Fprintf(w, `{"result":{"items":[{"offer_id":"id%d"}],"total":1000,"last_id":"p%d"}}`, n, n)
		}))
		defer server.Close()

		cfg := testConfig(server.URL)
		cfg.MaxPages = 3
		ids, err := NewClient(cfg).ListOfferIDs(ctx)
		assert.Nil(t, ids)
		assert.True(t, syncerr.Is(err, syncerr.KindPageLimit), "got %v", err)
		assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
	})

	t.Run("HTTPError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"Invalid Api-Key"}`, http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := NewClient(testConfig(server.URL)).ListOfferIDs(ctx)
		var se *syncerr.Error
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	})
}

func TestClient_UpdateStocks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/product/import/stocks", r.URL.Path)

		var req map[string][]map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req["stocks"], 2)
		assert.Equal(t, "A", req["stocks"][0]["offer_id"])
		assert.EqualValues(t, 100, req["stocks"][0]["stock"])

		_, _ = w.Write([]byte(`{"result":[{"offer_id":"A","updated":true,"errors":[]},{"offer_id":"B","updated":false,"errors":[{"code":"NOT_FOUND","message":"offer not found"}]}]}`))
	}))
	defer server.Close()

	results, err := NewClient(testConfig(server.URL)).UpdateStocks(context.Background(), []StockUpdate{
		{OfferID: "A", Stock: 100},
		{OfferID: "B", Stock: 0},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.False(t, results[0].Rejected())
	assert.True(t, results[1].Rejected())
	assert.Equal(t, "NOT_FOUND", results[1].Errors[0].Code)
}

func TestClient_UpdatePrices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/product/import/prices", r.URL.Path)

		var req pricesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []PriceUpdate{{
			AutoActionEnabled: "UNKNOWN",
			CurrencyCode:      "RUB",
			OfferID:           "A",
			OldPrice:          "0",
			Price:             "5990",
		}}, req.Prices)

		_, _ = w.Write([]byte(`{"result":[{"offer_id":"A","updated":true}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	results, err := client.UpdatePrices(context.Background(), []PriceUpdate{{
		AutoActionEnabled: autoActionUnknown,
		CurrencyCode:      currencyRUB,
		OfferID:           "A",
		OldPrice:          oldPriceNone,
		Price:             "5990",
	}})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
