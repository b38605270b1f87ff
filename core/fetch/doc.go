// Package fetch downloads the upstream JSON documents a title needs.
//
// A title's fetch set is a list of Descriptors (URL + logical name). FetchAll
// launches them together, bounded by Config.Concurrency, and returns only when
// every download has either succeeded or failed. Failures are isolated: they
// are logged with the logical name, reported in the matching Result and leave
// the name absent from the document store, while sibling downloads carry on.
//
// Downloads are single-attempt (no retries) but bounded by Config.TimeoutSeconds
// so that a hung mirror cannot stall a cook indefinitely.
//
// Responses may arrive gzip, deflate, brotli or zstd encoded; the body is
// decoded according to its Content-Encoding before parsing.
//
// # Usage
//
//	client := fetch.NewClient(cfg.Fetch, logg)
//	defer client.Close()
//
//	store := document.NewStore()
//	for _, r := range client.FetchAll(ctx, descriptors, store) {
//	    if r.Err != nil { ... }
//	}
package fetch
