package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// REORDERLIST_LIST_ITEM_HEIGHT=3.
const EnvPrefix = "REORDERLIST"

// Output formats for the final order printed on exit.
const (
	OutputTable = "table"
	OutputYAML  = "yaml"
	OutputNone  = "none"
)

var (
	// ErrInvalidItemHeight indicates a non-positive row height
	ErrInvalidItemHeight = errors.New("item height must be positive")

	// ErrInvalidItemCount indicates a non-positive demo item count
	ErrInvalidItemCount = errors.New("item count must be positive")

	// ErrInvalidOutput indicates an unknown output format
	ErrInvalidOutput = errors.New("unknown output format")
)

// Config holds application configuration.
type Config struct {
	List      ListConfig      `mapstructure:"list"`
	Log       LogConfig       `mapstructure:"log"`
	Output    OutputConfig    `mapstructure:"output"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
}

// ListConfig holds list settings.
type ListConfig struct {
	Title      string `mapstructure:"title"`
	ItemHeight int    `mapstructure:"item_height"` // Rows per item.
	ItemCount  int    `mapstructure:"item_count"`  // Generated items when no file is given.
	ItemsFile  string `mapstructure:"items_file"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level   string `mapstructure:"level"`
	File    string `mapstructure:"file"`
	NoColor bool   `mapstructure:"no_color"`
}

// OutputConfig controls what is printed after the program exits.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// ClipboardConfig controls the copy-order key.
type ClipboardConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// New returns a viper instance with defaults, env overrides, and the config
// file location set. Flags can be bound to it before calling Load.
func New(path string) *viper.Viper {
	v := viper.New()

	v.SetDefault("list.title", "Reorderable List")
	v.SetDefault("list.item_height", 1)
	v.SetDefault("list.item_count", 10)
	v.SetDefault("list.items_file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", defaultLogFile())
	v.SetDefault("log.no_color", true)
	v.SetDefault("output.format", OutputTable)
	v.SetDefault("clipboard.enabled", true)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "reorderlist"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file, if any, and decodes the result. A missing
// file is not an error unless it was named explicitly.
func Load(v *viper.Viper) (Config, error) {
	if path := v.ConfigFileUsed(); path != "" {
		if _, err := os.Stat(path); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the values Load cannot default away.
func (c Config) Validate() error {
	if c.List.ItemHeight <= 0 {
		return fmt.Errorf("list.item_height %d: %w", c.List.ItemHeight, ErrInvalidItemHeight)
	}
	if c.List.ItemsFile == "" && c.List.ItemCount <= 0 {
		return fmt.Errorf("list.item_count %d: %w", c.List.ItemCount, ErrInvalidItemCount)
	}
	switch c.Output.Format {
	case OutputTable, OutputYAML, OutputNone:
	default:
		return fmt.Errorf("output.format %q: %w", c.Output.Format, ErrInvalidOutput)
	}
	return nil
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "reorderlist", "reorderlist.log")
}
