package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Success_Sample(t *testing.T) {
	t.Parallel()

	th, err := Decode(Sample)
	require.NoError(t, err)
	assert.Equal(t, Default(), th)
}

func TestDecode_Success_Partial(t *testing.T) {
	t.Parallel()

	th, err := Decode(`
[colors]
directory = "RED"

[colors.table]
header = "white"

[colors.extensions]
".LOG" = "bright_black"
rs = "green"
`)
	require.NoError(t, err)

	assert.Equal(t, Red, th.FileTypes.Directory)
	assert.Equal(t, BrightCyan, th.FileTypes.File)
	assert.Equal(t, White, th.Table.Header)
	assert.Equal(t, BrightCyan, th.Table.Name)
	assert.Equal(t, BrightBlack, th.Extensions["log"])
	assert.Equal(t, Green, th.Extensions["rs"])
	assert.Equal(t, Blue, th.Extensions["py"])
}

func TestDecode_Success_UnknownColorsDropped(t *testing.T) {
	t.Parallel()

	th, err := Decode(`
[colors]
file = "purple"
symlink = "cyan"

[colors.table]
size = "ultraviolet"

[colors.extensions]
rs = "nope"
new = "blue"
`)
	require.NoError(t, err)

	assert.Equal(t, BrightCyan, th.FileTypes.File)
	assert.Equal(t, Cyan, th.FileTypes.Symlink)
	assert.Equal(t, BrightMagenta, th.Table.Size)
	assert.Equal(t, Yellow, th.Extensions["rs"])
	assert.Equal(t, Blue, th.Extensions["new"])
}

func TestDecode_Success_LegacyFileTypesTable(t *testing.T) {
	t.Parallel()

	th, err := Decode(`
[colors.file_types]
file = "white"
directory = "green"
`)
	require.NoError(t, err)

	assert.Equal(t, White, th.FileTypes.File)
	assert.Equal(t, Green, th.FileTypes.Directory)
	assert.Equal(t, BrightMagenta, th.FileTypes.Symlink)
}

func TestDecode_Fail_Malformed(t *testing.T) {
	t.Parallel()

	_, err := Decode("[colors\nfile = ")
	require.Error(t, err)

	_, err = Decode("[colors]\nfile = 5\n")
	require.Error(t, err)
}

func TestLoad_Success_FallsBackToDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	assert.Equal(t, Default(), Load(filepath.Join(dir, "missing.toml")))

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("not = [valid"), 0o644))
	assert.Equal(t, Default(), Load(broken))
}

func TestLoad_Success_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[colors]\nfile = \"red\"\n"), 0o644))

	assert.Equal(t, Red, Load(path).FileTypes.File)
}
