package reconcile

import "fmt"

// ReconcileStocks builds one StockRecord per identifier in ids.
//
// Feed rows are walked in order; a row whose code is in ids yields a record with the
// resolved quantity and its code is removed from ids, so a duplicated code only counts
// once. Identifiers left in ids afterwards get a zero record, in set order.
//
// ids is consumed: it is empty when ReconcileStocks returns successfully. Pass a Clone
// to keep the original. An unparseable quantity fails the whole call with a
// DataFormat error and no records.
func ReconcileStocks(rows []SupplierRow, ids *IdentifierSet) ([]StockRecord, error) {
	stocks := make([]StockRecord, 0, ids.Len())

	for _, row := range rows {
		if !ids.Contains(row.Code) {
			continue
		}
		stock, err := ResolveQuantity(row.Quantity)
		if err != nil {
			return nil, fmt.Errorf("offer %s: %w", row.Code, err)
		}
		stocks = append(stocks, StockRecord{OfferID: row.Code, Stock: stock})
		ids.Remove(row.Code)
	}

	for _, id := range ids.Remaining() {
		stocks = append(stocks, StockRecord{OfferID: id, Stock: 0})
		ids.Remove(id)
	}

	return stocks, nil
}

// NonZero returns the records with a quantity other than zero.
func NonZero(stocks []StockRecord) []StockRecord {
	out := make([]StockRecord, 0, len(stocks))
	for _, s := range stocks {
		if s.Stock != 0 {
			out = append(out, s)
		}
	}
	return out
}
