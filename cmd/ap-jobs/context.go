package main

import (
	"log/slog"
	"strings"
	"sync"

	"apjobs/internal/config"
	"apjobs/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	stateDirEnv  string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, logLevelFlag *string, stateDirEnv string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		stateDirEnv:  strings.TrimSpace(stateDirEnv),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		// AUTOPHONE_DIR wins over the config file, matching the original
		// script's sole configuration channel.
		if c.stateDirEnv != "" {
			if err := cfg.SetStateDir(c.stateDirEnv); err != nil {
				c.configErr = err
				return
			}
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.TrimSpace(*c.logLevelFlag)
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}
