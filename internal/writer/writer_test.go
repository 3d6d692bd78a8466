package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f4ah6o/postindex-go/internal/content"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		records []content.IndexRecord
		want    string
	}{
		{name: "nil", records: nil, want: "[]\n"},
		{name: "empty", records: []content.IndexRecord{}, want: "[]\n"},
		{
			name:    "one record",
			records: []content.IndexRecord{{Title: "A", Summary: "B", URL: "/blog/01-post"}},
			want: `[
  {
    "title": "A",
    "summary": "B",
    "url": "/blog/01-post"
  }
]
`,
		},
		{
			name:    "html is not escaped",
			records: []content.IndexRecord{{Title: "<T> & U", Summary: "s", URL: "/blog/x"}},
			want: `[
  {
    "title": "<T> & U",
    "summary": "s",
    "url": "/blog/x"
  }
]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.records)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "posts.json")
	records := []content.IndexRecord{
		{Title: "A", Summary: "B", URL: "/blog/a"},
		{Title: "C", Summary: "D", URL: "/blog/c"},
	}

	w := New()
	require.NoError(t, w.Write(out, records))
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	require.NoError(t, w.Write(out, records))
	second, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")

	got, err := Read(out)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestWrite_Overwrites(t *testing.T) {
	out := filepath.Join(t.TempDir(), "posts.json")
	require.NoError(t, os.WriteFile(out, []byte(`[{"title":"old","summary":"old","url":"/blog/old"}, "garbage`), 0644))

	require.NoError(t, New().Write(out, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestWrite_MissingDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "posts.json")

	err := New().Write(out, nil)
	require.ErrorIs(t, err, ErrOutputDirMissing)
	assert.NoFileExists(t, out)
}

func TestRead_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := Read(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err = Read(bad)
	assert.Error(t, err)
}
