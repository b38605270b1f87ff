package output_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"json-cooker/core/document"
	"json-cooker/core/output"
	"json-cooker/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Run("CompactAndSorted", func(t *testing.T) {
		b, err := output.Encode(map[string]any{"b": 1, "a": []int{1, 2}})
		require.NoError(t, err)
		assert.Equal(t, `{"a":[1,2],"b":1}`, string(b))
	})

	t.Run("NoHTMLEscaping", func(t *testing.T) {
		b, err := output.Encode(map[string]string{"t": "<b>&</b>"})
		require.NoError(t, err)
		assert.Equal(t, `{"t":"<b>&</b>"}`, string(b))
	})

	t.Run("DocumentKeepsOrder", func(t *testing.T) {
		b, err := output.Encode(document.MustParse(`{"z": 1, "a": {"<": ">"}}`))
		require.NoError(t, err)
		assert.Equal(t, `{"z":1,"a":{"<":">"}}`, string(b))
	})
}

func TestFileWriter(t *testing.T) {
	dir := t.TempDir()
	w := output.NewFileWriter(dir)
	ctx := context.Background()

	t.Run("NestedName", func(t *testing.T) {
		require.NoError(t, w.Write(ctx, "hsr/skill_tree", map[string]int{"a": 1}))

		data, err := os.ReadFile(filepath.Join(dir, "hsr", "skill_tree.json"))
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(data))
	})

	t.Run("Overwrites", func(t *testing.T) {
		require.NoError(t, w.Write(ctx, "talents", map[string]int{"old": 1}))
		require.NoError(t, w.Write(ctx, "talents", map[string]int{"new": 2}))

		data, err := os.ReadFile(w.Path("talents"))
		require.NoError(t, err)
		assert.Equal(t, `{"new":2}`, string(data))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotContains(t, e.Name(), ".talents.json.", "temp file left behind")
		}
	})

	t.Run("UnencodableValueLeavesPreviousFile", func(t *testing.T) {
		require.NoError(t, w.Write(ctx, "consts", map[string]int{"kept": 1}))
		err := w.Write(ctx, "consts", map[string]any{"bad": make(chan int)})
		assert.Error(t, err)

		data, err := os.ReadFile(w.Path("consts"))
		require.NoError(t, err)
		assert.Equal(t, `{"kept":1}`, string(data))
	})

	t.Run("RejectsEscapingNames", func(t *testing.T) {
		for _, name := range []string{"", "../x", "/abs", "a/../../b"} {
			assert.Error(t, w.Write(ctx, name, 1), name)
		}
	})
}

func TestBucketWriter(t *testing.T) {
	ctx := context.Background()

	t.Run("Write", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "game-data", "data/zzz/titles.json",
			mock.MatchedBy(func(r io.Reader) bool {
				b, _ := io.ReadAll(r)
				return string(b) == `{"1":"x"}`
			}),
			int64(9), mock.Anything,
		).Return(minio.UploadInfo{}, nil)

		w := output.NewBucketWriter(client, "game-data", "/data/")
		require.NoError(t, w.Write(ctx, "zzz/titles", map[string]string{"1": "x"}))
		client.AssertExpectations(t)
	})

	t.Run("UploadError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("denied"))

		w := output.NewBucketWriter(client, "game-data", "")
		err := w.Write(ctx, "talents", 1)
		assert.ErrorContains(t, err, "denied")
	})

	t.Run("EnsureBucketCreatesMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "game-data").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "game-data", mock.Anything).Return(nil)

		w := output.NewBucketWriter(client, "game-data", "data")
		require.NoError(t, w.EnsureBucket(ctx))
		client.AssertExpectations(t)
	})

	t.Run("EnsureBucketExisting", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "game-data").Return(true, nil)

		w := output.NewBucketWriter(client, "game-data", "data")
		require.NoError(t, w.EnsureBucket(ctx))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})
}

type failingWriter struct{ err error }

func (f failingWriter) Write(context.Context, string, any) error { return f.err }

func TestMultiWriter(t *testing.T) {
	dir := t.TempDir()
	fw := output.NewFileWriter(dir)
	m := output.MultiWriter{failingWriter{errors.New("mirror down")}, fw}

	err := m.Write(context.Background(), "talents", map[string]int{"a": 1})
	assert.ErrorContains(t, err, "mirror down")

	// The file writer still ran after the first writer failed.
	_, statErr := os.Stat(fw.Path("talents"))
	assert.NoError(t, statErr)
}
