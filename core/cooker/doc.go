// Package cooker sequences the pipeline that turns upstream game data into
// output artifacts.
//
// A Title is a configuration table: the documents to download, the ordered
// key resolution rules (optional) and the independent transforms. One generic
// pipeline cooks every title.
//
// # Lifecycle
//
// Each cook moves through Init, Fetching, Resolving (only when the title has
// rules), Transforming and Done. A resolution failure ends the cook in Failed,
// but only after the transforms that do not read a failed name have run:
// each Transform lists the canonical names it Requires, and a transform
// missing one is skipped with ErrUnresolved. The deobfuscations dump
// requires every name, so a partial mapping is never persisted.
//
// # Failure Isolation
//
// Nothing escalates. Every fetch, the resolution step and every transform
// produce a TaskResult that is logged and collected in the Report:
//
//   - A failed fetch leaves its document out of the store. Transforms that
//     read it fail with document.ErrMissing, and rules that search it fail
//     to resolve; the others are unaffected.
//   - Transforms run concurrently over the same frozen store. An error or
//     panic in one does not stop its siblings.
//   - Artifacts are built fully in memory before any is written. A write
//     error affects only that artifact.
//
// # Usage
//
//	c := cooker.New(fetchClient, writer, log, cooker.WithRecorder(ledger))
//	for _, report := range c.Run(ctx, titles) {
//	    fmt.Println(report.Title, report.State, len(report.Failures()))
//	}
package cooker
