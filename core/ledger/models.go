package ledger

import "time"

// CookRun is one recorded cook of a title.
type CookRun struct {
	RunID      string     `gorm:"column:run_id;primaryKey;size:36"`
	Title      string     `gorm:"column:title;size:32;index"`
	State      string     `gorm:"column:state;size:16"`
	Artifacts  int        `gorm:"column:artifacts"`
	Failures   int        `gorm:"column:failures"`
	StartedAt  time.Time  `gorm:"column:started_at;index"`
	FinishedAt time.Time  `gorm:"column:finished_at"`
	Tasks      []CookTask `gorm:"foreignKey:RunID;references:RunID;constraint:OnDelete:CASCADE"`
}

func (CookRun) TableName() string { return "cook_runs" }

// CookTask is one fetch, resolution or transform outcome of a run.
type CookTask struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement"`
	RunID      string `gorm:"column:run_id;size:36;index"`
	Stage      string `gorm:"column:stage;size:16"`
	Name       string `gorm:"column:name;size:128"`
	Error      string `gorm:"column:error;type:text"`
	DurationMs int64  `gorm:"column:duration_ms"`
}

func (CookTask) TableName() string { return "cook_tasks" }

// OK reports whether the task succeeded.
func (t CookTask) OK() bool { return t.Error == "" }

var expectedColumns = map[string][]string{
	"cook_runs":  {"run_id", "title", "state", "artifacts", "failures", "started_at", "finished_at"},
	"cook_tasks": {"id", "run_id", "stage", "name", "error", "duration_ms"},
}
