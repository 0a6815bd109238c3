package yandex

import (
	"time"

	"stock-sync/core/syncerr"
)

// Scheme names.
const (
	SchemeFBS = "fbs"
	SchemeDBS = "dbs"
)

// SchemeConfig identifies the campaign and warehouse of one fulfilment scheme.
type SchemeConfig struct {
	// CampaignID is the Partner API campaign id.
	CampaignID int64 `mapstructure:"campaign_id" default:"0"`
	// WarehouseID is the warehouse stocks are reported for.
	WarehouseID int64 `mapstructure:"warehouse_id" default:"0"`
	// Enabled turns the scheme on.
	Enabled bool `mapstructure:"enabled" default:"true"`
}

// Config holds configuration for the Yandex Market Partner API.
type Config struct {
	// BaseURL is the Partner API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.partner.market.yandex.ru"`
	// Token is the OAuth token sent as a bearer token.
	Token string `mapstructure:"token" default:""`
	// Enabled turns the marketplace on for "sync all".
	Enabled bool `mapstructure:"enabled" default:"true"`
	// FBS is the fulfilment-by-seller campaign.
	FBS SchemeConfig `mapstructure:"fbs"`
	// DBS is the delivery-by-seller campaign.
	DBS SchemeConfig `mapstructure:"dbs"`
	// PageSize is the listing page size.
	PageSize int `mapstructure:"page_size" default:"200"`
	// MaxPages bounds the listing loop.
	MaxPages int `mapstructure:"max_pages" default:"1000"`
	// StockBatchSize is the number of SKUs per stock update.
	StockBatchSize int `mapstructure:"stock_batch_size" default:"2000"`
	// PriceBatchSize is the number of offers per price update.
	PriceBatchSize int `mapstructure:"price_batch_size" default:"500"`
	// TimeoutSeconds bounds a single request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}

// Scheme is a named, configured fulfilment scheme.
type Scheme struct {
	Name string
	SchemeConfig
}

// Schemes returns the enabled schemes in sync order: FBS first, then DBS.
func (c Config) Schemes() []Scheme {
	var out []Scheme
	if c.FBS.Enabled {
		out = append(out, Scheme{Name: SchemeFBS, SchemeConfig: c.FBS})
	}
	if c.DBS.Enabled {
		out = append(out, Scheme{Name: SchemeDBS, SchemeConfig: c.DBS})
	}
	return out
}

// Timeout returns the request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks the values a sync pass cannot run without.
func (c Config) Validate() error {
	const op = "yandex config"
	if c.Token == "" {
		return syncerr.InvalidArgument(op, "token is required (YANDEX_TOKEN or MARKET_TOKEN)")
	}
	if c.BaseURL == "" {
		return syncerr.InvalidArgument(op, "base url is required")
	}
	if c.PageSize <= 0 || c.MaxPages <= 0 {
		return syncerr.InvalidArgument(op, "page size and max pages must be positive")
	}
	if c.StockBatchSize <= 0 || c.PriceBatchSize <= 0 {
		return syncerr.InvalidArgument(op, "batch sizes must be positive")
	}
	schemes := c.Schemes()
	if len(schemes) == 0 {
		return syncerr.InvalidArgument(op, "no fulfilment scheme enabled")
	}
	for _, s := range schemes {
		if s.CampaignID <= 0 {
			return syncerr.InvalidArgument(op, "%s campaign id is required", s.Name)
		}
		if s.WarehouseID <= 0 {
			return syncerr.InvalidArgument(op, "%s warehouse id is required", s.Name)
		}
	}
	return nil
}
