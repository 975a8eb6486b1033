package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfigDir struct {
	dir string
	err error
}

func (f *fakeConfigDir) UserConfigDir() (string, error) {
	return f.dir, f.err
}

func TestDefaultPath(t *testing.T) {
	t.Parallel()

	path, err := DefaultPath(&fakeConfigDir{dir: "/home/u/.config"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/u/.config", "bestls", "config.toml"), path)

	_, err = DefaultPath(&fakeConfigDir{err: errors.New("no home")})
	require.ErrorIs(t, err, ErrNoConfigDir)

	_, err = DefaultPath(&fakeConfigDir{})
	require.ErrorIs(t, err, ErrNoConfigDir)
}

func TestStore_Success_InitKeepsExisting(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "bestls", "config.toml"))

	created, err := store.Init()
	require.NoError(t, err)
	assert.True(t, created)

	data, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, Sample, string(data))

	require.NoError(t, os.WriteFile(store.Path, []byte("[colors]\nfile = \"red\"\n"), 0o644))

	created, err = store.Init()
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, Red, store.Load().FileTypes.File)
}

func TestStore_Success_Reset(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, os.WriteFile(store.Path, []byte("custom"), 0o644))

	require.NoError(t, store.Reset())

	data, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, Sample, string(data))
}

func TestStore_Fail_ReadMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "config.toml"))

	_, err := store.Read()
	require.ErrorIs(t, err, os.ErrNotExist)
}
