// Package server holds the HTTP trigger API configuration.
//
// The serve command builds the Fiber application; this package only defines
// the listen port, the API key and the limits applied to sync and history
// requests.
package server
