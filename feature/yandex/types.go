package yandex

const (
	statusOK = "OK"

	stockTypeFit = "FIT"
	currencyRUR  = "RUR"

	// updatedAtLayout is UTC with second precision and a literal Z.
	updatedAtLayout = "2006-01-02T15:04:05Z"
)

type mappingEntry struct {
	Offer struct {
		ShopSku string `json:"shopSku"`
	} `json:"offer"`
}

type mappingResponse struct {
	Status string `json:"status"`
	Result struct {
		Paging struct {
			NextPageToken string `json:"nextPageToken"`
		} `json:"paging"`
		OfferMappingEntries []mappingEntry `json:"offerMappingEntries"`
	} `json:"result"`
}

// StockItem is the stock of one SKU in one warehouse.
type StockItem struct {
	Count     int    `json:"count"`
	Type      string `json:"type"`
	UpdatedAt string `json:"updatedAt"`
}

// SKUStock is one entry of a stock update.
type SKUStock struct {
	SKU         string      `json:"sku"`
	WarehouseID int64       `json:"warehouseId"`
	Items       []StockItem `json:"items"`
}

type stocksRequest struct {
	SKUs []SKUStock `json:"skus"`
}

// Price is an integer rouble price.
type Price struct {
	Value      int    `json:"value"`
	CurrencyID string `json:"currencyId"`
}

// OfferPrice is one entry of a price update.
type OfferPrice struct {
	ID    string `json:"id"`
	Price Price  `json:"price"`
}

type pricesRequest struct {
	Offers []OfferPrice `json:"offers"`
}

type statusResponse struct {
	Status string `json:"status"`
}
