// Package inventory runs stock and price syncs against the marketplaces.
//
// A Service downloads the supplier feed once per sync and hands the rows to
// every selected marketplace. A marketplace is a list of reconcile adapters
// run in order (Ozon has one, Yandex Market has one per fulfilment scheme);
// the first failing adapter ends that marketplace's pass while the others
// still run. Each pass is journalled when a Journal is configured, and the
// whole Report is archived to object storage when an Archive is configured.
//
// The Handler exposes the Service over HTTP:
//
//	POST /inventory/sync/:target?dry_run=true
//	GET  /inventory/runs?limit=20
package inventory
