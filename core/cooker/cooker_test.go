package cooker

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"json-cooker/core/deobfuscate"
	"json-cooker/core/document"
	"json-cooker/core/fetch"
	"json-cooker/core/output"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubFetcher serves documents from memory; names without a body fail.
type stubFetcher struct {
	docs map[string]string
}

func (s stubFetcher) FetchAll(_ context.Context, ds []fetch.Descriptor, store *document.Store) []fetch.Result {
	results := make([]fetch.Result, len(ds))
	for i, d := range ds {
		results[i] = fetch.Result{Name: d.Name, URL: d.URL}
		raw, ok := s.docs[d.Name]
		if !ok {
			results[i].Err = &fetch.StatusError{URL: d.URL, StatusCode: http.StatusNotFound}
			continue
		}
		store.Put(d.Name, document.MustParse(raw))
	}
	return results
}

// memWriter keeps encoded artifacts in memory and fails the names in fail.
type memWriter struct {
	mu    sync.Mutex
	files map[string]string
	fail  map[string]bool
}

func newMemWriter(fail ...string) *memWriter {
	w := &memWriter{files: map[string]string{}, fail: map[string]bool{}}
	for _, name := range fail {
		w.fail[name] = true
	}
	return w
}

func (w *memWriter) Write(_ context.Context, name string, value any) error {
	if w.fail[name] {
		return errors.New("disk full")
	}
	data, err := output.Encode(value)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[name] = string(data)
	return nil
}

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Record(ctx context.Context, report *Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

// copyDoc re-persists a fetched document unchanged.
func copyDoc(doc, artifact string) Transform {
	return Transform{
		Name: artifact,
		Build: func(store *document.Store) ([]Artifact, error) {
			n, err := store.Get(doc)
			if err != nil {
				return nil, err
			}
			return []Artifact{{Name: artifact, Value: n}}, nil
		},
	}
}

func descriptors(names ...string) []fetch.Descriptor {
	ds := make([]fetch.Descriptor, len(names))
	for i, n := range names {
		ds[i] = fetch.Descriptor{URL: "https://example.invalid/" + n + ".json", Name: n}
	}
	return ds
}

func TestCookWithoutRules(t *testing.T) {
	fetcher := stubFetcher{docs: map[string]string{
		"a": `{"x":1}`,
		"b": `[1,2]`,
	}}
	w := newMemWriter()
	title := Title{
		Name:       "plain",
		Fetches:    descriptors("a", "b"),
		Transforms: []Transform{copyDoc("a", "plain/a"), copyDoc("b", "plain/b")},
	}

	report := New(fetcher, w, nil).Cook(context.Background(), title)

	assert.Equal(t, StateDone, report.State)
	assert.True(t, report.OK())
	assert.Nil(t, report.Resolution)
	assert.Nil(t, report.Mapping)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, []string{"plain/a", "plain/b"}, report.Artifacts)
	assert.Equal(t, `{"x":1}`, w.files["plain/a"])
	assert.Equal(t, `[1,2]`, w.files["plain/b"])
	assert.False(t, report.Finished.Before(report.Started))
	require.Len(t, report.Fetches, 2)
	assert.Equal(t, StageFetch, report.Fetches[0].Stage)
}

func TestCookIsolatesFetchFailure(t *testing.T) {
	fetcher := stubFetcher{docs: map[string]string{"a": `{"x":1}`}}
	w := newMemWriter()
	title := Title{
		Name:       "partial",
		Fetches:    descriptors("a", "b"),
		Transforms: []Transform{copyDoc("a", "a"), copyDoc("b", "b")},
	}

	report := New(fetcher, w, nil).Cook(context.Background(), title)

	assert.Equal(t, StateDone, report.State)
	assert.False(t, report.OK())
	assert.Equal(t, []string{"a"}, report.Artifacts)
	assert.Contains(t, w.files, "a")
	assert.NotContains(t, w.files, "b")

	failures := report.Failures()
	require.Len(t, failures, 2)
	assert.Equal(t, StageFetch, failures[0].Stage)
	assert.Equal(t, "b", failures[0].Name)
	var statusErr *fetch.StatusError
	assert.ErrorAs(t, failures[0].Err, &statusErr)
	assert.Equal(t, StageTransform, failures[1].Stage)
	assert.ErrorIs(t, failures[1].Err, document.ErrMissing)
}

func TestCookResolvesKeys(t *testing.T) {
	fetcher := stubFetcher{docs: map[string]string{
		"levels": `{"xQ":[{"aa":5,"bb":2},{"aa":1}]}`,
	}}
	w := newMemWriter()
	title := Title{
		Name:    "obf",
		Fetches: descriptors("levels"),
		Rules: []deobfuscate.Rule{
			deobfuscate.FirstKey("Data", "levels"),
			deobfuscate.KeyWhere("Rarity", "levels", deobfuscate.Equals(2), deobfuscate.Resolved("Data"), deobfuscate.At(0)),
		},
		Transforms: []Transform{{
			Name: "levels",
			Build: func(store *document.Store) ([]Artifact, error) {
				n, err := store.Get("levels")
				if err != nil {
					return nil, err
				}
				return []Artifact{{Name: "obf/levels", Value: n.Get("Data")}}, nil
			},
		}},
	}

	report := New(fetcher, w, nil).Cook(context.Background(), title)

	require.True(t, report.OK(), "failures: %v", report.Failures())
	require.NotNil(t, report.Resolution)
	assert.Equal(t, StageResolve, report.Resolution.Stage)
	raw, ok := report.Mapping.Raw("Rarity")
	assert.True(t, ok)
	assert.Equal(t, "bb", raw)

	assert.Equal(t, `{"Data":"xQ","Rarity":"bb"}`, w.files["obf/deobfuscations"])
	assert.Equal(t, `[{"aa":5,"Rarity":2},{"aa":1}]`, w.files["obf/levels"])
	assert.Equal(t, []string{"obf/deobfuscations", "obf/levels"}, report.Artifacts)
}

func TestCookResolutionFailureSkipsTransforms(t *testing.T) {
	fetcher := stubFetcher{docs: map[string]string{"levels": `{"xQ":[{"aa":5}]}`}}
	w := newMemWriter()
	called := false
	title := Title{
		Name:    "obf",
		Fetches: descriptors("levels"),
		Rules: []deobfuscate.Rule{
			deobfuscate.FirstKey("Data", "levels"),
			deobfuscate.KeyWhere("Rarity", "levels", deobfuscate.Equals(2), deobfuscate.Resolved("Data"), deobfuscate.At(0)),
		},
		Transforms: []Transform{{
			Name: "never",
			Build: func(*document.Store) ([]Artifact, error) {
				called = true
				return nil, nil
			},
		}},
	}

	report := New(fetcher, w, nil).Cook(context.Background(), title)

	assert.Equal(t, StateFailed, report.State)
	assert.False(t, called)
	assert.Empty(t, w.files)
	require.Len(t, report.Transforms, 2)
	for _, tr := range report.Transforms {
		assert.Equal(t, StageResolve, tr.Stage)
		assert.ErrorIs(t, tr.Err, ErrUnresolved)
		assert.ErrorContains(t, tr.Err, "Rarity")
	}
	require.NotNil(t, report.Resolution)
	assert.ErrorIs(t, report.Resolution.Err, deobfuscate.ErrNotFound)

	var resErr *deobfuscate.ResolutionError
	require.ErrorAs(t, report.Resolution.Err, &resErr)
	assert.Equal(t, "Rarity", resErr.Canonical)

	// The partial mapping is kept for diagnosis
	assert.Equal(t, 1, report.Mapping.Len())
}

// A document that failed to download only blocks the transforms that read
// names resolved from it.
func TestCookPartialResolution(t *testing.T) {
	fetcher := stubFetcher{docs: map[string]string{
		"levels": `{"xQ":[{"aa":5,"bb":2}]}`,
	}}
	w := newMemWriter()
	title := Title{
		Name:    "obf",
		Fetches: descriptors("levels", "cards"),
		Rules: []deobfuscate.Rule{
			deobfuscate.FirstKey("Data", "levels"),
			deobfuscate.KeyWhere("Rarity", "levels", deobfuscate.Equals(2), deobfuscate.Resolved("Data"), deobfuscate.At(0)),
			deobfuscate.KeyWhere("CardID", "cards", deobfuscate.Equals(7), deobfuscate.Resolved("Data"), deobfuscate.At(0)),
		},
		Transforms: []Transform{
			func() Transform {
				tr := copyDoc("levels", "obf/levels")
				tr.Requires = []string{"Data", "Rarity"}
				return tr
			}(),
			func() Transform {
				tr := copyDoc("cards", "obf/cards")
				tr.Requires = []string{"Data", "CardID"}
				return tr
			}(),
		},
	}
	require.NoError(t, title.Validate())

	report := New(fetcher, w, nil).Cook(context.Background(), title)

	assert.Equal(t, StateFailed, report.State)
	assert.Equal(t, []string{"obf/levels"}, report.Artifacts)
	assert.Equal(t, `{"Data":[{"aa":5,"Rarity":2}]}`, w.files["obf/levels"])
	assert.NotContains(t, w.files, "obf/deobfuscations")

	var resErr *deobfuscate.ResolutionError
	require.ErrorAs(t, report.Resolution.Err, &resErr)
	assert.Equal(t, "CardID", resErr.Canonical)
	assert.ErrorIs(t, report.Resolution.Err, document.ErrMissing)

	skipped := map[string]bool{}
	for _, tr := range report.Transforms {
		if errors.Is(tr.Err, ErrUnresolved) {
			skipped[tr.Name] = true
		}
	}
	assert.Equal(t, map[string]bool{"deobfuscations": true, "obf/cards": true}, skipped)
}

func TestCookRecoversTransformPanic(t *testing.T) {
	fetcher := stubFetcher{docs: map[string]string{"a": `{}`}}
	w := newMemWriter()
	title := Title{
		Name:    "panicky",
		Fetches: descriptors("a"),
		Transforms: []Transform{
			{Name: "boom", Build: func(*document.Store) ([]Artifact, error) { panic("index out of range") }},
			copyDoc("a", "a"),
		},
	}

	report := New(fetcher, w, nil).Cook(context.Background(), title)

	assert.Equal(t, StateDone, report.State)
	require.Len(t, report.Transforms, 2)
	assert.ErrorContains(t, report.Transforms[0].Err, "transform boom panicked: index out of range")
	assert.True(t, report.Transforms[1].OK())
	assert.Equal(t, []string{"a"}, report.Artifacts)
}

func TestCookWriteFailureIsPerArtifact(t *testing.T) {
	fetcher := stubFetcher{docs: map[string]string{"a": `{"k":"v"}`}}
	w := newMemWriter("multi/one")
	title := Title{
		Name:    "multi",
		Fetches: descriptors("a"),
		Transforms: []Transform{{
			Name: "multi",
			Build: func(store *document.Store) ([]Artifact, error) {
				return []Artifact{
					{Name: "multi/one", Value: 1},
					{Name: "multi/two", Value: 2},
				}, nil
			},
		}},
	}

	report := New(fetcher, w, nil).Cook(context.Background(), title)

	require.Len(t, report.Transforms, 1)
	res := report.Transforms[0]
	assert.Equal(t, StageWrite, res.Stage)
	assert.ErrorContains(t, res.Err, "save multi/one: disk full")
	assert.Equal(t, "save multi/one: disk full", res.Reason())
	assert.Equal(t, []string{"multi/two"}, report.Artifacts)
	assert.Equal(t, "2", w.files["multi/two"])
}

func TestRunRecordsEveryTitle(t *testing.T) {
	fetcher := stubFetcher{docs: map[string]string{"a": `1`}}
	rec := &mockRecorder{}
	rec.On("Record", mock.Anything, mock.AnythingOfType("*cooker.Report")).Return(errors.New("ledger down")).Twice()

	c := New(fetcher, newMemWriter(), nil, WithRecorder(rec))
	reports := c.Run(context.Background(), []Title{
		{Name: "one", Fetches: descriptors("a"), Transforms: []Transform{copyDoc("a", "one/a")}},
		{Name: "two", Fetches: descriptors("missing")},
	})

	require.Len(t, reports, 2)
	assert.Equal(t, "one", reports[0].Title)
	assert.True(t, reports[0].OK())
	assert.Equal(t, "two", reports[1].Title)
	assert.Equal(t, StateDone, reports[1].State)
	assert.Len(t, reports[1].Failures(), 1)
	assert.NotEqual(t, reports[0].RunID, reports[1].RunID)
	rec.AssertExpectations(t)
}

func TestTitleValidate(t *testing.T) {
	noop := func(*document.Store) ([]Artifact, error) { return nil, nil }

	tests := []struct {
		name    string
		title   Title
		wantErr string
	}{
		{"Valid", Title{Name: "ok", Fetches: descriptors("a", "b"), Transforms: []Transform{{Name: "t", Build: noop}}}, ""},
		{"NoName", Title{}, "title has no name"},
		{"DuplicateFetch", Title{Name: "x", Fetches: descriptors("a", "a")}, `duplicate fetch name "a"`},
		{"DuplicateTransform", Title{Name: "x", Transforms: []Transform{{Name: "t", Build: noop}, {Name: "t", Build: noop}}}, `duplicate transform name "t"`},
		{"MissingBuild", Title{Name: "x", Transforms: []Transform{{Name: "t"}}}, `transform "t" has no build function`},
		{"MissingDiscover", Title{Name: "x", Rules: []deobfuscate.Rule{{Name: "Data"}}}, `rule "Data" has no discover function`},
		{"UnknownRequirement", Title{Name: "x", Transforms: []Transform{{Name: "t", Build: noop, Requires: []string{"Rarity"}}}}, `transform "t" requires "Rarity", which no rule resolves`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.title.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestTitleSummary(t *testing.T) {
	title := Title{
		Name:       "obf",
		Fetches:    descriptors("levels"),
		Rules:      []deobfuscate.Rule{deobfuscate.FirstKey("Data", "levels")},
		Transforms: []Transform{copyDoc("levels", "obf/levels")},
	}

	s := title.Summary()
	assert.Equal(t, "obf", s.Name)
	assert.Equal(t, title.Fetches, s.Fetches)
	require.Len(t, s.Rules, 1)
	assert.Equal(t, "Data", s.Rules[0].Name)
	assert.Equal(t, "levels", s.Rules[0].Document)
	assert.Equal(t, []string{"obf/levels"}, s.Transforms)
}

// A failed download must not keep artifacts that do not read it off disk.
func TestCookEndToEndIsolation(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/good.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"b":"<1>","a":2}`))
	})
	mux.HandleFunc("/bad.json", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := fetch.NewClient(fetch.Config{TimeoutSeconds: 5, Concurrency: 2}, nil)
	defer client.Close()

	dir := t.TempDir()
	title := Title{
		Name: "e2e",
		Fetches: []fetch.Descriptor{
			{URL: srv.URL + "/good.json", Name: "good"},
			{URL: srv.URL + "/bad.json", Name: "bad"},
		},
		Transforms: []Transform{copyDoc("good", "e2e/good"), copyDoc("bad", "e2e/bad")},
	}

	report := New(client, output.NewFileWriter(dir), nil).Cook(context.Background(), title)

	assert.Equal(t, StateDone, report.State)
	data, err := os.ReadFile(filepath.Join(dir, "e2e", "good.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"b":"<1>","a":2}`, string(data))
	assert.NoFileExists(t, filepath.Join(dir, "e2e", "bad.json"))
	assert.Len(t, report.Failures(), 2)
}
