// Package feed downloads and parses the supplier stock sheet.
//
// The supplier publishes a zip archive holding a single spreadsheet (legacy
// .xls, sometimes .xlsx). A Source fetches the archive bytes, either straight
// from the supplier URL or from a mirrored object in the storage bucket. The
// Loader unpacks the archive in memory, locates the header row and turns every
// data row into a reconcile.SupplierRow.
//
// # Sheet layout
//
// The header row sits at a fixed, configurable index (17 by default, counting
// from zero). Code, quantity and price columns are found by their header
// names, so column order may change without breaking the loader. Rows whose
// code cell is empty are skipped.
//
// # Usage
//
//	src := feed.NewHTTPSource(cfg.Feed)
//	rows, err := feed.NewLoader(src, cfg.Feed, log).Load(ctx)
package feed
