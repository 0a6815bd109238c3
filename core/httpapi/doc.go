// Package httpapi is the JSON-over-HTTP plumbing shared by the marketplace clients.
//
// A Requester performs exactly one request per Do call and reports failures as
// *syncerr.Error values: network failures as transport errors, non-2xx answers as
// HTTP status errors and undecodable bodies as data-format errors.
package httpapi
