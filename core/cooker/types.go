package cooker

import (
	"errors"
	"fmt"
	"time"

	"json-cooker/core/deobfuscate"
	"json-cooker/core/document"
	"json-cooker/core/fetch"
)

// State is the lifecycle position of one cook.
type State string

const (
	StateInit         State = "init"
	StateFetching     State = "fetching"
	StateResolving    State = "resolving"
	StateTransforming State = "transforming"
	StateDone         State = "done"
	StateFailed       State = "failed"
)

// Stage names the pipeline step a TaskResult belongs to.
type Stage string

const (
	StageFetch     Stage = "fetch"
	StageResolve   Stage = "resolve"
	StageTransform Stage = "transform"
	StageWrite     Stage = "write"
)

// Artifact is one named output value. Name is relative to the output root
// and may contain slashes ("hsr/skill_tree").
type Artifact struct {
	Name  string
	Value any
}

// BuildFunc produces artifacts from a frozen store. It must not modify the
// documents it reads; clone before mutating.
type BuildFunc func(store *document.Store) ([]Artifact, error)

// ErrUnresolved marks a transform skipped because a key name it reads was not
// resolved.
var ErrUnresolved = errors.New("unresolved keys")

// Transform is one independent unit of the transform batch.
type Transform struct {
	Name  string
	Build BuildFunc
	// Requires lists the canonical key names the transform reads. Nil means
	// every name the title's rules resolve. Ignored for titles without rules.
	Requires []string
}

// Title bundles everything needed to cook one game.
type Title struct {
	// Name identifies the title on the command line and in logs.
	Name string
	// Fetches lists the documents downloaded before anything else runs.
	Fetches []fetch.Descriptor
	// Rules recover obfuscated key names. Empty means no resolving step.
	Rules []deobfuscate.Rule
	// Transforms run concurrently once the store is complete.
	Transforms []Transform
}

// Validate checks that logical names are unique and every transform can run.
func (t Title) Validate() error {
	if t.Name == "" {
		return errors.New("title has no name")
	}
	var errs []error
	seen := map[string]bool{}
	for _, d := range t.Fetches {
		if seen[d.Name] {
			errs = append(errs, fmt.Errorf("duplicate fetch name %q", d.Name))
		}
		seen[d.Name] = true
	}
	seen = map[string]bool{}
	for _, tr := range t.Transforms {
		if tr.Build == nil {
			errs = append(errs, fmt.Errorf("transform %q has no build function", tr.Name))
		}
		if seen[tr.Name] {
			errs = append(errs, fmt.Errorf("duplicate transform name %q", tr.Name))
		}
		seen[tr.Name] = true
	}
	resolved := map[string]bool{}
	for _, r := range t.Rules {
		if r.Discover == nil {
			errs = append(errs, fmt.Errorf("rule %q has no discover function", r.Name))
		}
		resolved[r.Name] = true
	}
	for _, tr := range t.Transforms {
		for _, name := range tr.Requires {
			if !resolved[name] {
				errs = append(errs, fmt.Errorf("transform %q requires %q, which no rule resolves", tr.Name, name))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("title %s: %w", t.Name, err)
	}
	return nil
}

// requires returns the canonical names tr reads.
func (t Title) requires(tr Transform) []string {
	if tr.Requires != nil {
		return tr.Requires
	}
	names := make([]string, len(t.Rules))
	for i, r := range t.Rules {
		names[i] = r.Name
	}
	return names
}

// TaskResult is the outcome of one fetch, resolution or transform.
type TaskResult struct {
	Stage    Stage
	Name     string
	Err      error
	Duration time.Duration
}

// OK reports whether the task succeeded.
func (r TaskResult) OK() bool { return r.Err == nil }

// Reason returns the error text, or "" on success.
func (r TaskResult) Reason() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Report collects every task outcome of one cook.
type Report struct {
	RunID string
	Title string
	State State

	Fetches    []TaskResult
	Resolution *TaskResult
	Transforms []TaskResult

	// Artifacts lists the names that were persisted, in transform order.
	Artifacts []string
	// Mapping is the resolved key mapping, nil when the title has no rules.
	Mapping *deobfuscate.Mapping

	Started  time.Time
	Finished time.Time
}

// Failures returns every failed task in pipeline order.
func (r *Report) Failures() []TaskResult {
	var failed []TaskResult
	for _, f := range r.Fetches {
		if !f.OK() {
			failed = append(failed, f)
		}
	}
	if r.Resolution != nil && !r.Resolution.OK() {
		failed = append(failed, *r.Resolution)
	}
	for _, t := range r.Transforms {
		if !t.OK() {
			failed = append(failed, t)
		}
	}
	return failed
}

// OK reports whether the cook reached Done without any failed task.
func (r *Report) OK() bool {
	return r.State == StateDone && len(r.Failures()) == 0
}

// Duration is the wall time of the cook.
func (r *Report) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}
