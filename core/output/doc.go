// Package output persists cooked artifacts.
//
// An artifact is a named JSON value. Names may contain slashes to nest
// artifacts per title ("hsr/skill_tree", "zzz/titles"). Every artifact is
// encoded compactly (no indentation, no HTML escaping) and fully replaces the
// previous run's output.
//
// # Writers
//
//   - FileWriter: writes <dir>/<name>.json through a temp file + rename.
//   - BucketWriter: mirrors the same bytes to S3/MinIO under <prefix>/<name>.json.
//   - MultiWriter: fans one artifact out to several writers.
//
// # Usage
//
//	w := output.NewFileWriter(cfg.Output.Dir)
//	err := w.Write(ctx, "hsr/skill_tree", tree)
package output
