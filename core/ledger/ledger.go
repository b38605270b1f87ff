package ledger

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"json-cooker/core/cooker"
	"json-cooker/core/database"

	"gorm.io/gorm"
)

// Ledger records cook reports in a database.
type Ledger struct {
	db *gorm.DB
}

// New wraps an open connection.
func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Migrate creates or updates the ledger tables and verifies their columns.
func (l *Ledger) Migrate(ctx context.Context) error {
	if l.db == nil {
		return errors.New("ledger has no database connection")
	}
	if err := l.db.WithContext(ctx).AutoMigrate(&CookRun{}, &CookTask{}); err != nil {
		return fmt.Errorf("failed to migrate ledger: %w", err)
	}

	tables := make([]string, 0, len(expectedColumns))
	for table := range expectedColumns {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	for _, table := range tables {
		missing, err := database.MissingColumns(l.db.WithContext(ctx), table, expectedColumns[table])
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return fmt.Errorf("table %s is missing columns: %s", table, strings.Join(missing, ", "))
		}
	}
	return nil
}

// Record stores a finished report with all of its tasks.
func (l *Ledger) Record(ctx context.Context, report *cooker.Report) error {
	if l.db == nil {
		return errors.New("ledger has no database connection")
	}
	run := fromReport(report)
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&run).Error
	})
	if err != nil {
		return fmt.Errorf("failed to record run %s: %w", report.RunID, err)
	}
	return nil
}

// Recent returns the latest runs, newest first, with their tasks.
// An empty title matches every title.
func (l *Ledger) Recent(ctx context.Context, title string, limit int) ([]CookRun, error) {
	if l.db == nil {
		return nil, errors.New("ledger has no database connection")
	}
	if limit <= 0 {
		limit = 10
	}

	q := l.db.WithContext(ctx).Model(&CookRun{})
	if title != "" {
		q = q.Where("title = ?", title)
	}

	var runs []CookRun
	err := q.Order("started_at DESC").Limit(limit).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load runs: %w", err)
	}
	return runs, nil
}

func fromReport(r *cooker.Report) CookRun {
	run := CookRun{
		RunID:      r.RunID,
		Title:      r.Title,
		State:      string(r.State),
		Artifacts:  len(r.Artifacts),
		Failures:   len(r.Failures()),
		StartedAt:  r.Started,
		FinishedAt: r.Finished,
	}

	tasks := append([]cooker.TaskResult(nil), r.Fetches...)
	if r.Resolution != nil {
		tasks = append(tasks, *r.Resolution)
	}
	tasks = append(tasks, r.Transforms...)

	for _, t := range tasks {
		run.Tasks = append(run.Tasks, CookTask{
			RunID:      r.RunID,
			Stage:      string(t.Stage),
			Name:       t.Name,
			Error:      t.Reason(),
			DurationMs: t.Duration.Milliseconds(),
		})
	}
	return run
}
