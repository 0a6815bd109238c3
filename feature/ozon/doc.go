// Package ozon talks to the Ozon Seller API.
//
// Client wraps the three calls a sync pass needs: the paged product listing,
// the stock import and the price import. Adapter plugs a Client into the
// reconcile engine.
//
// Requests authenticate with the Client-Id and Api-Key headers.
package ozon
