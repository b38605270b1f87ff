package cooker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"json-cooker/core/deobfuscate"
	"json-cooker/core/document"
	"json-cooker/core/fetch"
	"json-cooker/core/logger"
	"json-cooker/core/output"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Fetcher downloads a fetch set into a store. *fetch.Client implements it.
type Fetcher interface {
	FetchAll(ctx context.Context, descriptors []fetch.Descriptor, store *document.Store) []fetch.Result
}

// Recorder persists finished reports. A recorder error is logged, never fatal.
type Recorder interface {
	Record(ctx context.Context, report *Report) error
}

// Cooker runs the fetch, resolve, transform and persist pipeline for titles.
type Cooker struct {
	fetcher  Fetcher
	writer   output.Writer
	logger   *zap.Logger
	recorder Recorder
}

// Option customizes a Cooker.
type Option func(*Cooker)

// WithRecorder records every finished report.
func WithRecorder(r Recorder) Option {
	return func(c *Cooker) { c.recorder = r }
}

// New creates a Cooker. A nil logger disables logging.
func New(fetcher Fetcher, writer output.Writer, log *zap.Logger, opts ...Option) *Cooker {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Cooker{fetcher: fetcher, writer: writer, logger: log}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run cooks titles one after another and returns a report per title.
// Per-title failures are reported, not returned.
func (c *Cooker) Run(ctx context.Context, titles []Title) []*Report {
	reports := make([]*Report, 0, len(titles))
	for _, t := range titles {
		reports = append(reports, c.Cook(ctx, t))
	}
	return reports
}

// Cook runs the full pipeline for one title.
func (c *Cooker) Cook(ctx context.Context, title Title) *Report {
	report := &Report{
		RunID:   uuid.NewString(),
		Title:   title.Name,
		State:   StateInit,
		Started: time.Now(),
	}
	log := logger.WithRun(c.logger, title.Name, report.RunID)
	log.Info("Cooking started",
		zap.Int("fetches", len(title.Fetches)),
		zap.Int("rules", len(title.Rules)),
		zap.Int("transforms", len(title.Transforms)))

	store := document.NewStore()

	report.State = StateFetching
	for _, r := range c.fetcher.FetchAll(ctx, title.Fetches, store) {
		report.Fetches = append(report.Fetches, TaskResult{
			Stage:    StageFetch,
			Name:     r.Name,
			Err:      r.Err,
			Duration: r.Duration,
		})
	}

	transforms := title.Transforms
	var skipped []TaskResult
	state := StateDone
	if len(title.Rules) > 0 {
		report.State = StateResolving
		start := time.Now()
		mapping, err := deobfuscate.Resolve(store, title.Rules)
		report.Mapping = mapping
		report.Resolution = &TaskResult{
			Stage:    StageResolve,
			Name:     "deobfuscations",
			Err:      err,
			Duration: time.Since(start),
		}
		if err != nil {
			state = StateFailed
			log.Error("Key resolution failed", zap.Error(err))
		} else {
			log.Info("Keys resolved", zap.Any("deobfuscations", mapping))
		}

		deobfuscate.Apply(store, mapping)

		// Transforms whose names all resolved still run after a partial failure
		transforms = nil
		for _, t := range append([]Transform{mappingDump(title.Name, mapping)}, title.Transforms...) {
			missing := deobfuscate.Unresolved(mapping, title.requires(t))
			if len(missing) == 0 {
				transforms = append(transforms, t)
				continue
			}
			log.Warn("Transform skipped",
				zap.String("transform", t.Name),
				zap.Strings("unresolved", missing))
			skipped = append(skipped, TaskResult{
				Stage: StageResolve,
				Name:  t.Name,
				Err:   fmt.Errorf("%w: %s", ErrUnresolved, strings.Join(missing, ", ")),
			})
		}
	}

	report.State = StateTransforming
	results, artifacts := c.transform(ctx, log, store, transforms)
	report.Transforms = append(skipped, results...)
	report.Artifacts = artifacts

	return c.finish(ctx, log, report, state)
}

// transform runs every transform concurrently over the frozen store.
func (c *Cooker) transform(ctx context.Context, log *zap.Logger, store *document.Store, transforms []Transform) ([]TaskResult, []string) {
	results := make([]TaskResult, len(transforms))
	written := make([][]string, len(transforms))

	var g errgroup.Group
	for i, t := range transforms {
		g.Go(func() error {
			results[i], written[i] = c.runTransform(ctx, log, store, t)
			return nil
		})
	}
	_ = g.Wait()

	var artifacts []string
	for _, names := range written {
		artifacts = append(artifacts, names...)
	}
	return results, artifacts
}

func (c *Cooker) runTransform(ctx context.Context, log *zap.Logger, store *document.Store, t Transform) (TaskResult, []string) {
	start := time.Now()
	result := TaskResult{Stage: StageTransform, Name: t.Name}

	artifacts, err := build(t, store)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		log.Error("Transform failed", zap.String("transform", t.Name), zap.Error(err))
		return result, nil
	}

	// Artifacts are complete in memory before the first write
	var failed []error
	var written []string
	for _, a := range artifacts {
		if err := c.writer.Write(ctx, a.Name, a.Value); err != nil {
			failed = append(failed, fmt.Errorf("save %s: %w", a.Name, err))
			log.Error("Saving artifact failed",
				zap.String("transform", t.Name),
				zap.String("artifact", a.Name),
				zap.Error(err))
			continue
		}
		log.Info("Saved artifact", zap.String("artifact", a.Name))
		written = append(written, a.Name)
	}

	if len(failed) > 0 {
		result.Stage = StageWrite
		result.Err = errors.Join(failed...)
	}
	result.Duration = time.Since(start)
	return result, written
}

// build calls the transform, turning a panic into an error.
func build(t Transform, store *document.Store) (artifacts []Artifact, err error) {
	defer func() {
		if r := recover(); r != nil {
			artifacts = nil
			err = fmt.Errorf("transform %s panicked: %v", t.Name, r)
		}
	}()
	if t.Build == nil {
		return nil, fmt.Errorf("transform %s has no build function", t.Name)
	}
	return t.Build(store)
}

func mappingDump(title string, m *deobfuscate.Mapping) Transform {
	return Transform{
		Name: "deobfuscations",
		Build: func(*document.Store) ([]Artifact, error) {
			return []Artifact{{Name: title + "/deobfuscations", Value: m}}, nil
		},
	}
}

func (c *Cooker) finish(ctx context.Context, log *zap.Logger, report *Report, state State) *Report {
	report.State = state
	report.Finished = time.Now()

	failures := report.Failures()
	fields := []zap.Field{
		zap.String("state", string(report.State)),
		zap.Int("artifacts", len(report.Artifacts)),
		zap.Int("failures", len(failures)),
		zap.Duration("duration", report.Duration()),
	}
	if len(failures) > 0 {
		log.Warn("Cooking finished with failures", fields...)
	} else {
		log.Info("Done!", fields...)
	}

	if c.recorder != nil {
		if err := c.recorder.Record(ctx, report); err != nil {
			log.Warn("Failed to record cook run", zap.Error(err))
		}
	}
	return report
}
