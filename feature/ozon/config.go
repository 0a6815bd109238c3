package ozon

import (
	"time"

	"stock-sync/core/syncerr"
)

// Config holds configuration for the Ozon Seller API.
type Config struct {
	// BaseURL is the Seller API root.
	BaseURL string `mapstructure:"base_url" default:"https://api-seller.ozon.ru"`
	// ClientID is the seller account id sent as Client-Id.
	ClientID string `mapstructure:"client_id" default:""`
	// APIKey is the seller token sent as Api-Key.
	APIKey string `mapstructure:"api_key" default:""`
	// Enabled turns the marketplace on for "sync all".
	Enabled bool `mapstructure:"enabled" default:"true"`
	// PageSize is the listing page size.
	PageSize int `mapstructure:"page_size" default:"1000"`
	// MaxPages bounds the listing loop.
	MaxPages int `mapstructure:"max_pages" default:"1000"`
	// StockBatchSize is the number of stock records per import call.
	StockBatchSize int `mapstructure:"stock_batch_size" default:"100"`
	// PriceBatchSize is the number of price records per import call.
	PriceBatchSize int `mapstructure:"price_batch_size" default:"1000"`
	// TimeoutSeconds bounds a single request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}

// Timeout returns the request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks the values a sync pass cannot run without.
func (c Config) Validate() error {
	const op = "ozon config"
	switch {
	case c.ClientID == "":
		return syncerr.InvalidArgument(op, "client id is required (OZON_CLIENT_ID or CLIENT_ID)")
	case c.APIKey == "":
		return syncerr.InvalidArgument(op, "api key is required (OZON_API_KEY or SELLER_TOKEN)")
	case c.BaseURL == "":
		return syncerr.InvalidArgument(op, "base url is required")
	case c.PageSize <= 0 || c.MaxPages <= 0:
		return syncerr.InvalidArgument(op, "page size and max pages must be positive")
	case c.StockBatchSize <= 0 || c.PriceBatchSize <= 0:
		return syncerr.InvalidArgument(op, "batch sizes must be positive")
	}
	return nil
}
