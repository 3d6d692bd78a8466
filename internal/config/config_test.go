package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_DefaultFileAbsent(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_DefaultFilePresent(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeConfig(t, dir, "source = \"content/posts\"\ninclude_drafts = true\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "content/posts", cfg.Source)
	assert.True(t, cfg.IncludeDrafts)
	assert.Equal(t, "public/posts.json", cfg.Output, "unset keys keep defaults")
	assert.Equal(t, "index.md", cfg.Document)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
source = "blog"
output = "dist/search.json"
document = "post.md"
url_prefix = "/posts/"
strict = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Source:    "blog",
		Output:    "dist/search.json",
		Document:  "post.md",
		URLPrefix: "/posts/",
		Strict:    true,
	}, cfg)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{
			name:    "explicit file missing",
			path:    filepath.Join(dir, "missing.toml"),
			wantErr: "missing.toml",
		},
		{
			name:    "invalid toml",
			path:    writeConfig(t, t.TempDir(), "source = \n"),
			wantErr: "failed to parse",
		},
		{
			name:    "unknown key",
			path:    writeConfig(t, t.TempDir(), "source = \"a\"\nsorce = \"b\"\n"),
			wantErr: "unknown keys",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty source", mutate: func(c *Config) { c.Source = "" }, wantErr: true},
		{name: "empty output", mutate: func(c *Config) { c.Output = "" }, wantErr: true},
		{name: "empty document", mutate: func(c *Config) { c.Document = "" }, wantErr: true},
		{name: "document with separator", mutate: func(c *Config) { c.Document = "a/index.md" }, wantErr: true},
		{name: "empty url prefix allowed", mutate: func(c *Config) { c.URLPrefix = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
