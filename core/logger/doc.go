// Package logger provides structured logging based on Zap.
//
// The debug level selects Zap's development configuration; every other level
// uses the production configuration. Output is console or JSON encoded.
//
// HTTP handlers derive a per-request logger with WithRayID, which attaches the
// ray id set by the rayid middleware so all entries of one request correlate.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	log.Info("Sync started", zap.String("target", "ozon"))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Sync failed", zap.Error(err))
package logger
