// Package ledger keeps a history of cooks in a database.
//
// Every finished cooker.Report becomes one cook_runs row plus one cook_tasks
// row per fetch, resolution and transform. The ledger is optional
// (database.enabled) and implements cooker.Recorder, so a failure to record
// is logged by the cooker and never changes the outcome of a run.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	l := ledger.New(db)
//	if err := l.Migrate(ctx); err != nil {
//	    return err
//	}
//	c := cooker.New(client, writer, log, cooker.WithRecorder(l))
//
//	runs, _ := l.Recent(ctx, "zzz", 5)
package ledger
