package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"chess-fen/internal/config"
	"chess-fen/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	cfg    *config.Config
	logger *slog.Logger
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag, logLevelFlag: logLevelFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := ""
	if c.configFlag != nil {
		path = strings.TrimSpace(*c.configFlag)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	c.cfg = cfg
	return cfg, nil
}

// loggerFor builds the command logger on first use, writing to w.
func (c *commandContext) loggerFor(w io.Writer) (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: w,
	})
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	c.logger = logger
	return logger, nil
}
