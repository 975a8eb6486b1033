package configuration

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/bestls/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnv map[string]string

func (f fakeEnv) LookupEnv(key string) (string, bool) {
	v, ok := f[key]

	return v, ok
}

type failingProvider struct{}

func (*failingProvider) Read(...string) (map[string]string, error) {
	return nil, errors.New("permission denied")
}

func writeDefaults(t *testing.T, content string) string {
	t.Helper()

	path := DefaultPath(t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDefaultPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("/cfg", "bestls", "defaults.env"), DefaultPath("/cfg"))
}

func TestReadDefaults_Success_File(t *testing.T) {
	t.Parallel()

	path := writeDefaults(t, `
BESTLS_SORT=size
BESTLS_FORMAT=json-pretty
BESTLS_ALL=true
BESTLS_COMPACT=1
BESTLS_COLUMNS="name, size"
BESTLS_MIN_SIZE="1 KB"
BESTLS_MAX_SIZE=2MB
`)

	h := NewHandler(&GodotenvProvider{}, fakeEnv{})

	d, err := h.ReadDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, &Defaults{
		SortBy:        schema.SortBySize,
		Format:        schema.FormatJSONPretty,
		IncludeHidden: true,
		Compact:       true,
		Columns:       []string{"name", "size"},
		MinSize:       "1 KB",
		MaxSize:       "2MB",
	}, d)
}

func TestReadDefaults_Success_EnvironmentOverrides(t *testing.T) {
	t.Parallel()

	path := writeDefaults(t, "BESTLS_SORT=size\nBESTLS_ALL=true\n")

	h := NewHandler(&GodotenvProvider{}, fakeEnv{
		KeySort:    "date",
		KeyAll:     "false",
		KeyNoColor: "yes",
	})

	d, err := h.ReadDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, schema.SortByDate, d.SortBy)
	assert.False(t, d.IncludeHidden)
	assert.False(t, d.NoColor)
}

func TestReadDefaults_Success_MissingFile(t *testing.T) {
	t.Parallel()

	h := NewHandler(&GodotenvProvider{}, fakeEnv{KeyFormat: "json"})

	d, err := h.ReadDefaults(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.Equal(t, &Defaults{Format: schema.FormatJSON}, d)

	d, err = h.ReadDefaults("")
	require.NoError(t, err)
	assert.Equal(t, schema.FormatJSON, d.Format)
}

func TestReadDefaults_Success_InvalidValuesIgnored(t *testing.T) {
	t.Parallel()

	path := writeDefaults(t, `
BESTLS_SORT=color
BESTLS_FORMAT=xml
BESTLS_ALL=maybe
BESTLS_MIN_SIZE=lots
BESTLS_MAX_SIZE=-5
`)

	h := NewHandler(&GodotenvProvider{}, fakeEnv{})

	d, err := h.ReadDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, &Defaults{}, d)
}

func TestReadDefaults_Fail_Unreadable(t *testing.T) {
	t.Parallel()

	h := NewHandler(&failingProvider{}, fakeEnv{})

	_, err := h.ReadDefaults("/some/path")
	require.Error(t, err)
}

func TestNoColorRequested(t *testing.T) {
	t.Parallel()

	assert.True(t, NewHandler(nil, fakeEnv{EnvNoColor: "1"}).NoColorRequested())
	assert.False(t, NewHandler(nil, fakeEnv{EnvNoColor: ""}).NoColorRequested())
	assert.False(t, NewHandler(nil, fakeEnv{}).NoColorRequested())
}
