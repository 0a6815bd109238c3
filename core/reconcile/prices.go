package reconcile

// ReconcilePrices builds a PriceRecord for every feed row whose code is in ids,
// in feed order. Identifiers the feed does not mention get no record. ids is only read.
func ReconcilePrices(rows []SupplierRow, ids *IdentifierSet) []PriceRecord {
	var prices []PriceRecord
	for _, row := range rows {
		if !ids.Contains(row.Code) {
			continue
		}
		prices = append(prices, PriceRecord{
			OfferID: row.Code,
			Price:   NormalizePrice(row.Price),
		})
	}
	return prices
}
