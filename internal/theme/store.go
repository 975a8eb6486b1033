package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/desertwitch/bestls/internal/filelock"
)

const (
	configDirName  = "bestls"
	configFileName = "config.toml"
	configPerms    = 0o644
)

// Sample is the configuration file written by [Store.Init] and [Store.Reset].
const Sample = `# bestls Configuration File
# Location: ~/.config/bestls/config.toml

[colors]
# File type colors
file = "bright_cyan"
directory = "bright_blue"
symlink = "bright_magenta"

[colors.table]
# Table column colors
name = "bright_cyan"
size = "bright_magenta"
date = "bright_yellow"
header = "bright_green"

[colors.extensions]
# Extension-based file colors (case-insensitive)
rs = "yellow"
py = "blue"
js = "yellow"
ts = "blue"
go = "bright_cyan"
md = "cyan"
json = "green"
toml = "red"
yaml = "magenta"
yml = "magenta"
`

type configDirProvider interface {
	UserConfigDir() (string, error)
}

// DefaultPath returns the conventional location of the configuration file,
// "<user config dir>/bestls/config.toml".
func DefaultPath(osProvider configDirProvider) (string, error) {
	dir, err := osProvider.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("(theme-path) %w: %w", ErrNoConfigDir, err)
	}
	if dir == "" {
		return "", fmt.Errorf("(theme-path) %w", ErrNoConfigDir)
	}

	return filepath.Join(dir, configDirName, configFileName), nil
}

// Store manages the configuration file at Path on disk.
type Store struct {
	Path string
}

// NewStore returns a pointer to a new [Store] for the file at path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Init writes the [Sample] configuration unless a file already exists. It
// reports whether a file was created.
func (s *Store) Init() (bool, error) {
	if _, err := os.Stat(s.Path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("(theme-init) %w", err)
	}

	if err := filelock.LockAndWrite(s.Path, []byte(Sample), configPerms); err != nil {
		return false, fmt.Errorf("(theme-init) %w", err)
	}

	return true, nil
}

// Reset overwrites the configuration file with the [Sample] configuration.
func (s *Store) Reset() error {
	if err := filelock.LockAndWrite(s.Path, []byte(Sample), configPerms); err != nil {
		return fmt.Errorf("(theme-reset) %w", err)
	}

	return nil
}

// Read returns the raw content of the configuration file.
func (s *Store) Read() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("(theme-read) %w", err)
	}

	return data, nil
}

// Load returns the [Theme] of the configuration file, see [Load].
func (s *Store) Load() *Theme {
	return Load(s.Path)
}
