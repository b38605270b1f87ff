package cmd

import (
	"context"
	"fmt"

	"json-cooker/core/config"
	"json-cooker/core/cooker"
	"json-cooker/core/database"
	"json-cooker/core/fetch"
	"json-cooker/core/ledger"
	"json-cooker/core/logger"
	"json-cooker/core/output"
	"json-cooker/core/storage"

	"go.uber.org/zap"
)

// runCook cooks the given titles. Only setup failures are returned; cook
// failures are logged.
func runCook(ctx context.Context, titles []cooker.Title) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	if len(titles) == 0 {
		logg.Info("No title selected, nothing to cook. Use --genshin, --hsr or --zzz.")
		return nil
	}

	writer := buildWriter(ctx, cfg, logg)

	client := fetch.NewClient(cfg.Fetch, logg)
	defer client.Close()

	var opts []cooker.Option
	if l := openLedger(ctx, cfg.Database, logg); l != nil {
		opts = append(opts, cooker.WithRecorder(l))
	}

	c := cooker.New(client, writer, logg, opts...)

	var runnable []cooker.Title
	for _, t := range titles {
		if err := t.Validate(); err != nil {
			logg.Error("Skipping invalid title", zap.String("title", t.Name), zap.Error(err))
			continue
		}
		runnable = append(runnable, t)
	}

	for _, report := range c.Run(ctx, runnable) {
		failed := report.Failures()
		fields := []zap.Field{
			zap.String("title", report.Title),
			zap.String("run_id", report.RunID),
			zap.String("state", string(report.State)),
			zap.Int("artifacts", len(report.Artifacts)),
			zap.Int("failures", len(failed)),
		}
		for _, f := range failed {
			fields = append(fields, zap.String(string(f.Stage)+":"+f.Name, f.Reason()))
		}
		if report.OK() {
			logg.Info("Title cooked", fields...)
		} else {
			logg.Warn("Title cooked with failures", fields...)
		}
	}
	return nil
}

// buildWriter returns the local file writer, mirrored to the bucket when
// storage is enabled and reachable.
func buildWriter(ctx context.Context, cfg *config.Config, logg *zap.Logger) output.Writer {
	files := output.NewFileWriter(cfg.Output.Dir)
	if !cfg.Storage.Enabled {
		return files
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Warn("Bucket mirror disabled", zap.Error(err))
		return files
	}
	bucket := output.NewBucketWriter(client, cfg.Storage.Bucket, cfg.Output.Prefix)
	if err := bucket.EnsureBucket(ctx); err != nil {
		logg.Warn("Bucket mirror disabled", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
		return files
	}
	logg.Info("Mirroring artifacts to bucket", zap.String("bucket", cfg.Storage.Bucket))
	return output.MultiWriter{files, bucket}
}

// openLedger connects and migrates the run ledger. It returns nil when the
// ledger is disabled or unavailable.
func openLedger(ctx context.Context, cfg database.Config, logg *zap.Logger) *ledger.Ledger {
	if !cfg.Enabled {
		return nil
	}
	db, err := database.Connect(cfg)
	if err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}
	l := ledger.New(db)
	if err := l.Migrate(ctx); err != nil {
		logg.Warn("Run ledger disabled", zap.Error(err))
		return nil
	}
	logg.Info("Recording runs to ledger", zap.String("driver", cfg.Driver))
	return l
}
