package feed

import (
	"time"

	"stock-sync/core/syncerr"
)

// Source kinds.
const (
	SourceHTTP    = "http"
	SourceStorage = "storage"
)

// Config holds configuration for the supplier feed.
type Config struct {
	// Source selects where the archive comes from (http, storage).
	Source string `mapstructure:"source" default:"http"`
	// URL is the supplier archive URL used by the http source.
	URL string `mapstructure:"url" default:"https://timeworld.ru/upload/files/ostatki.zip"`
	// Object is the archive key in the storage bucket used by the storage source.
	Object string `mapstructure:"object" default:"feeds/ostatki.zip"`
	// Member is the spreadsheet name inside the archive. Empty picks the first sheet file.
	Member string `mapstructure:"member" default:"ostatki.xls"`
	// HeaderRow is the zero-based index of the header row.
	HeaderRow int `mapstructure:"header_row" default:"17"`
	// CodeColumn is the header of the product code column.
	CodeColumn string `mapstructure:"code_column" default:"Код"`
	// QuantityColumn is the header of the quantity column.
	QuantityColumn string `mapstructure:"quantity_column" default:"Количество"`
	// PriceColumn is the header of the price column.
	PriceColumn string `mapstructure:"price_column" default:"Цена"`
	// TimeoutSeconds bounds the download.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"120"`
}

// Timeout returns the download timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks the feed settings.
func (c Config) Validate() error {
	const op = "feed config"
	switch c.Source {
	case SourceHTTP:
		if c.URL == "" {
			return syncerr.InvalidArgument(op, "url is required for the http source")
		}
	case SourceStorage:
		if c.Object == "" {
			return syncerr.InvalidArgument(op, "object is required for the storage source")
		}
	default:
		return syncerr.InvalidArgument(op, "unknown source %q", c.Source)
	}
	if c.HeaderRow < 0 {
		return syncerr.InvalidArgument(op, "header row must not be negative")
	}
	if c.CodeColumn == "" || c.QuantityColumn == "" || c.PriceColumn == "" {
		return syncerr.InvalidArgument(op, "column names are required")
	}
	return nil
}
