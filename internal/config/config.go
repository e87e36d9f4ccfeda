package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"chess-fen/fen"
)

//go:embed sample_config.toml
var sampleConfig string

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// Position holds the metadata defaults for encoded positions.
type Position struct {
	ActiveColor    string `toml:"active_color"`
	CastlingRights string `toml:"castling_rights"`
	EnPassant      string `toml:"en_passant"`
	HalfmoveClock  int    `toml:"halfmove_clock"`
	FullmoveNumber int    `toml:"fullmove_number"`
}

// Logging contains logger settings.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the full fengen configuration.
type Config struct {
	Position Position `toml:"position"`
	Logging  Logging  `toml:"logging"`
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	opts := fen.DefaultOptions()
	return Config{
		Position: Position{
			ActiveColor:    opts.ActiveColor,
			CastlingRights: opts.CastlingRights,
			EnPassant:      opts.EnPassant,
			HalfmoveClock:  opts.HalfmoveClock,
			FullmoveNumber: opts.FullmoveNumber,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// Options converts the position defaults into encoder options.
func (c *Config) Options() fen.Options {
	return fen.Options{
		ActiveColor:    c.Position.ActiveColor,
		CastlingRights: c.Position.CastlingRights,
		EnPassant:      c.Position.EnPassant,
		HalfmoveClock:  c.Position.HalfmoveClock,
		FullmoveNumber: c.Position.FullmoveNumber,
	}
}

// DefaultConfigPath returns the default configuration file location,
// honouring XDG_CONFIG_HOME.
func DefaultConfigPath() (string, error) {
	if base, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "fengen", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "fengen", "config.toml"), nil
}

// Load reads the configuration at path, or the default location when path is
// empty. A missing file yields defaults. The returned bool reports whether a
// file was read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolved := path
	if resolved == "" {
		var err error
		resolved, err = DefaultConfigPath()
		if err != nil {
			return nil, "", false, err
		}
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, resolved, false, nil
		}
		return nil, "", false, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, "", false, fmt.Errorf("parse config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolved, true, nil
}

func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

// Validate checks logging settings. Position metadata is echoed verbatim
// into FEN output and is deliberately left unchecked.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
