// Package configuration implements the optional defaults file of bestls, an
// environment-style file of "BESTLS_*" keys that preset listing options.
package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/desertwitch/bestls/internal/filter"
	"github.com/desertwitch/bestls/internal/schema"
)

const (
	configDirName   = "bestls"
	defaultsEnvName = "defaults.env"
)

const (
	KeySort    = "BESTLS_SORT"
	KeyFormat  = "BESTLS_FORMAT"
	KeyAll     = "BESTLS_ALL"
	KeyCompact = "BESTLS_COMPACT"
	KeyNoColor = "BESTLS_NO_COLOR"
	KeyColumns = "BESTLS_COLUMNS"
	KeyMinSize = "BESTLS_MIN_SIZE"
	KeyMaxSize = "BESTLS_MAX_SIZE"

	// EnvNoColor is the conventional variable disabling colored output.
	EnvNoColor = "NO_COLOR"
)

type genericConfigProvider interface {
	Read(filenames ...string) (map[string]string, error)
}

type envProvider interface {
	LookupEnv(key string) (string, bool)
}

// Defaults are the preset listing options. Zero values mean "not preset".
type Defaults struct {
	SortBy        schema.SortKey
	Format        schema.Format
	IncludeHidden bool
	Compact       bool
	NoColor       bool
	Columns       []string
	MinSize       string
	MaxSize       string
}

// Handler is the principal implementation for the configuration services.
type Handler struct {
	configProvider genericConfigProvider
	envProvider    envProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(configProvider genericConfigProvider, envProvider envProvider) *Handler {
	return &Handler{
		configProvider: configProvider,
		envProvider:    envProvider,
	}
}

// DefaultPath returns the conventional location of the defaults file below
// the user configuration directory.
func DefaultPath(configDir string) string {
	return filepath.Join(configDir, configDirName, defaultsEnvName)
}

// ReadDefaults reads the defaults file at path and overlays the process
// environment onto it. A missing file is not an error. An empty path skips
// the file and only consults the environment. Values that cannot be parsed
// are warned about and ignored.
func (c *Handler) ReadDefaults(path string) (*Defaults, error) {
	envMap := make(map[string]string)

	if path != "" {
		fileMap, err := c.configProvider.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("(config-defaults) %w", err)
		}
		for k, v := range fileMap {
			envMap[k] = v
		}
	}

	for _, key := range []string{KeySort, KeyFormat, KeyAll, KeyCompact, KeyNoColor, KeyColumns, KeyMinSize, KeyMaxSize} {
		if v, ok := c.envProvider.LookupEnv(key); ok {
			envMap[key] = v
		}
	}

	d := &Defaults{
		IncludeHidden: c.MapKeyToBool(envMap, KeyAll),
		Compact:       c.MapKeyToBool(envMap, KeyCompact),
		NoColor:       c.MapKeyToBool(envMap, KeyNoColor),
		Columns:       filter.SplitList(c.MapKeyToString(envMap, KeyColumns)),
		MinSize:       c.MapKeyToSize(envMap, KeyMinSize),
		MaxSize:       c.MapKeyToSize(envMap, KeyMaxSize),
	}

	if v := c.MapKeyToString(envMap, KeySort); v != "" {
		key, err := schema.ParseSortKey(v)
		if err != nil {
			slog.Warn("Ignored invalid configuration value", "err", err, "key", KeySort)
		} else {
			d.SortBy = key
		}
	}

	if v := c.MapKeyToString(envMap, KeyFormat); v != "" {
		format, err := schema.ParseFormat(v)
		if err != nil {
			slog.Warn("Ignored invalid configuration value", "err", err, "key", KeyFormat)
		} else {
			d.Format = format
		}
	}

	return d, nil
}

// NoColorRequested reports whether the conventional NO_COLOR variable is set
// to a non-empty value.
func (c *Handler) NoColorRequested() bool {
	v, ok := c.envProvider.LookupEnv(EnvNoColor)

	return ok && v != ""
}

// MapKeyToString returns the trimmed value of a key, or empty if not present.
func (*Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return strings.TrimSpace(value)
	}

	return ""
}

// MapKeyToBool returns the boolean value of a key, or false if it is not
// present or not a boolean.
func (c *Handler) MapKeyToBool(envMap map[string]string, key string) bool {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return false
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("Ignored invalid configuration value", "err", err, "key", key)

		return false
	}

	return b
}

// MapKeyToSize returns the value of a key if it is a valid human size, or
// empty otherwise.
func (c *Handler) MapKeyToSize(envMap map[string]string, key string) string {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return ""
	}

	if _, ok := filter.ParseSizeLenient(value); !ok {
		return ""
	}

	return value
}
