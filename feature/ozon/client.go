package ozon

import (
	"context"
	"net/http"

	"stock-sync/core/httpapi"
	"stock-sync/core/syncerr"
)

const (
	pathProductList  = "/v2/product/list"
	pathImportStocks = "/v1/product/import/stocks"
	pathImportPrices = "/v1/product/import/prices"
)

// Client is an Ozon Seller API client.
type Client struct {
	api      *httpapi.Requester
	pageSize int
	maxPages int
}

// NewClient creates a Client from cfg. Extra options are passed to the requester.
func NewClient(cfg Config, opts ...httpapi.Option) *Client {
	base := []httpapi.Option{
		httpapi.WithTimeout(cfg.Timeout()),
		httpapi.WithHeader("Client-Id", cfg.ClientID),
		httpapi.WithHeader("Api-Key", cfg.APIKey),
	}
	return &Client{
		api:      httpapi.NewRequester(cfg.BaseURL, append(base, opts...)...),
		pageSize: cfg.PageSize,
		maxPages: cfg.MaxPages,
	}
}

// ListOfferIDs pages through the product list and returns every offer id.
//
// Paging follows last_id until the number of collected items reaches the
// total Ozon reports, or a page comes back empty. Exceeding the page limit
// is a PageLimit error.
func (c *Client) ListOfferIDs(ctx context.Context) ([]string, error) {
	const op = "ozon list products"

	var (
		ids    []string
		lastID string
	)
	for page := 0; page < c.maxPages; page++ {
		req := listRequest{
			Filter: listFilter{Visibility: visibilityAll},
			LastID: lastID,
			Limit:  c.pageSize,
		}
		var resp listResponse
		if err := c.api.Do(ctx, op, http.MethodPost, pathProductList, nil, req, &resp); err != nil {
			return nil, err
		}

		for _, item := range resp.Result.Items {
			ids = append(ids, item.OfferID)
		}
		if len(ids) >= resp.Result.Total || len(resp.Result.Items) == 0 {
			return ids, nil
		}
		lastID = resp.Result.LastID
	}
	return nil, syncerr.PageLimit(op, c.maxPages)
}

// UpdateStocks submits one stock import.
func (c *Client) UpdateStocks(ctx context.Context, stocks []StockUpdate) ([]ItemResult, error) {
	var resp importResponse
	if err := c.api.Do(ctx, "ozon import stocks", http.MethodPost, pathImportStocks, nil, stocksRequest{Stocks: stocks}, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// UpdatePrices submits one price import.
func (c *Client) UpdatePrices(ctx context.Context, prices []PriceUpdate) ([]ItemResult, error) {
	var resp importResponse
	if err := c.api.Do(ctx, "ozon import prices", http.MethodPost, pathImportPrices, nil, pricesRequest{Prices: prices}, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}
