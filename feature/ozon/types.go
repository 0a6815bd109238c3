package ozon

const (
	visibilityAll = "ALL"

	autoActionUnknown = "UNKNOWN"
	currencyRUB       = "RUB"
	oldPriceNone      = "0"
)

type listFilter struct {
	Visibility string `json:"visibility"`
}

type listRequest struct {
	Filter listFilter `json:"filter"`
	LastID string     `json:"last_id"`
	Limit  int        `json:"limit"`
}

type listItem struct {
	ProductID int64  `json:"product_id"`
	OfferID   string `json:"offer_id"`
}

type listResponse struct {
	Result struct {
		Items  []listItem `json:"items"`
		Total  int        `json:"total"`
		LastID string     `json:"last_id"`
	} `json:"result"`
}

// StockUpdate is one entry of a stock import.
type StockUpdate struct {
	OfferID string `json:"offer_id"`
	Stock   int    `json:"stock"`
}

type stocksRequest struct {
	Stocks []StockUpdate `json:"stocks"`
}

// PriceUpdate is one entry of a price import.
type PriceUpdate struct {
	AutoActionEnabled string `json:"auto_action_enabled"`
	CurrencyCode      string `json:"currency_code"`
	OfferID           string `json:"offer_id"`
	OldPrice          string `json:"old_price"`
	Price             string `json:"price"`
}

type pricesRequest struct {
	Prices []PriceUpdate `json:"prices"`
}

// ItemError is a per-item rejection reported by an import call.
type ItemError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ItemResult is the import outcome of one offer.
type ItemResult struct {
	ProductID int64       `json:"product_id"`
	OfferID   string      `json:"offer_id"`
	Updated   bool        `json:"updated"`
	Errors    []ItemError `json:"errors"`
}

// Rejected reports whether Ozon refused the item.
func (r ItemResult) Rejected() bool {
	return !r.Updated || len(r.Errors) > 0
}

type importResponse struct {
	Result []ItemResult `json:"result"`
}
