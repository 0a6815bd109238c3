package yandex

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"stock-sync/core/httpapi"
	"stock-sync/core/syncerr"
)

// Client is a Yandex Market Partner API client.
type Client struct {
	api      *httpapi.Requester
	pageSize int
	maxPages int
}

// NewClient creates a Client from cfg. Extra options are passed to the requester.
func NewClient(cfg Config, opts ...httpapi.Option) *Client {
	base := []httpapi.Option{
		httpapi.WithTimeout(cfg.Timeout()),
		httpapi.WithHeader("Authorization", "Bearer "+cfg.Token),
	}
	return &Client{
		api:      httpapi.NewRequester(cfg.BaseURL, append(base, opts...)...),
		pageSize: cfg.PageSize,
		maxPages: cfg.MaxPages,
	}
}

func campaignPath(campaignID int64, suffix string) string {
	return fmt.Sprintf("/campaigns/%d/%s", campaignID, suffix)
}

// ListOfferIDs returns the shop SKU of every offer mapped in the campaign.
// Paging follows nextPageToken until it comes back empty.
func (c *Client) ListOfferIDs(ctx context.Context, campaignID int64) ([]string, error) {
	op := fmt.Sprintf("yandex list offers (campaign %d)", campaignID)
	path := campaignPath(campaignID, "offer-mapping-entries")

	var (
		ids   []string
		token string
	)
	for page := 0; page < c.maxPages; page++ {
		query := url.Values{"limit": {strconv.Itoa(c.pageSize)}}
		if token != "" {
			query.Set("page_token", token)
		}

		var resp mappingResponse
		if err := c.api.Do(ctx, op, http.MethodGet, path, query, nil, &resp); err != nil {
			return nil, err
		}
		if err := checkStatus(op, resp.Status); err != nil {
			return nil, err
		}

		for _, e := range resp.Result.OfferMappingEntries {
			ids = append(ids, e.Offer.ShopSku)
		}
		token = resp.Result.Paging.NextPageToken
		if token == "" {
			return ids, nil
		}
	}
	return nil, syncerr.PageLimit(op, c.maxPages)
}

// UpdateStocks submits one stock update for the campaign.
func (c *Client) UpdateStocks(ctx context.Context, campaignID int64, skus []SKUStock) error {
	op := fmt.Sprintf("yandex update stocks (campaign %d)", campaignID)
	var resp statusResponse
	if err := c.api.Do(ctx, op, http.MethodPut, campaignPath(campaignID, "offers/stocks"), nil, stocksRequest{SKUs: skus}, &resp); err != nil {
		return err
	}
	return checkStatus(op, resp.Status)
}

// UpdatePrices submits one price update for the campaign.
func (c *Client) UpdatePrices(ctx context.Context, campaignID int64, offers []OfferPrice) error {
	op := fmt.Sprintf("yandex update prices (campaign %d)", campaignID)
	var resp statusResponse
	if err := c.api.Do(ctx, op, http.MethodPost, campaignPath(campaignID, "offer-prices/updates"), nil, pricesRequest{Offers: offers}, &resp); err != nil {
		return err
	}
	return checkStatus(op, resp.Status)
}

// checkStatus rejects a 2xx answer whose status field is present but not OK.
func checkStatus(op, status string) error {
	if status == "" || status == statusOK {
		return nil
	}
	return syncerr.DataFormat(op, "status", status, nil)
}
