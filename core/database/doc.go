// Package database keeps the run journal.
//
// It wraps GORM to open either MySQL or a local SQLite file, and stores one
// Run row per sync pass: which marketplace scheme ran, what it sent and how
// it ended. The schema inspector reads the live table definition so a
// deployment can check that the journal table matches the Run model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	journal := database.NewJournal(db)
//	_ = journal.Migrate(ctx)
//	runs, err := journal.Recent(ctx, 20)
package database
