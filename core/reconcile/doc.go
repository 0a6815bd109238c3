// Package reconcile merges the supplier feed with the identifiers a marketplace
// already knows and drives the submission of the resulting updates.
//
// A sync pass for one marketplace account has three steps:
//
//  1. List the marketplace identifiers (offer ids / shop SKUs) through the Adapter.
//  2. Reconcile stocks, chunk them to the adapter's batch size and submit each chunk.
//  3. Reconcile prices, chunk and submit the same way.
//
// # Stocks and prices are deliberately asymmetric
//
// ReconcileStocks produces one record for EVERY identifier the marketplace knows:
// identifiers matched by a feed row get the resolved feed quantity, the rest are
// reported as zero so that products the supplier stopped listing go out of stock.
//
// ReconcilePrices produces records ONLY for identifiers present in both the feed and
// the marketplace. A product the feed does not mention keeps its current price.
//
// # Ownership of the identifier set
//
// ReconcileStocks consumes the IdentifierSet it is given: every matched identifier is
// removed so the defaulting pass sees only the unmatched ones. Callers that need the
// set afterwards must pass a Clone. Run does exactly that: the stock pass gets a clone,
// the price pass gets the original.
//
// # Quantity sentinels
//
// The supplier reports ">10" for large stock and "1" for the last unit on display;
// they resolve to 100 and 0 respectively. Any other value must be a base-10 integer.
//
// # Usage
//
//	result, err := reconcile.Run(ctx, ozonAdapter, rows, reconcile.Options{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(len(result.Stocks), len(result.NonZero), len(result.Prices))
package reconcile
