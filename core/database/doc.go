// Package database handles database connections and schema inspection.
//
// It wraps GORM to open MySQL or SQLite connections from the application's
// configuration. The database is optional: it backs the run ledger only, so
// callers treat connection errors as warnings.
//
// # Connect
//
// Connect picks the dialector from Config.Driver, applies the configured
// timeout to the DSN and to the initial ping, and tunes the connection pool.
// SQLite connections are limited to one so ":memory:" databases survive
// across statements.
//
// # Schema Inspection
//
// TableColumns and MissingColumns read the live table definition (SHOW
// COLUMNS on MySQL, PRAGMA table_info on SQLite). The ledger uses them to
// confirm its tables after migration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Ledger disabled", zap.Error(err))
//	}
package database
