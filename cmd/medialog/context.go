package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"medialog/internal/aggregate"
	"medialog/internal/config"
	"medialog/internal/logging"
	"medialog/internal/store"
)

// commandContext lazily materializes the pieces most commands need: the
// parsed config, a logger, and a seeded store. The store is in-memory, so
// every invocation starts from the configured seed state.
type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger

	storeOnce sync.Once
	store     *store.Store
	storeErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
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
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			cfg = nil
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			logger = slog.Default()
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) ensureStore(ctx context.Context) (*store.Store, error) {
	c.storeOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.storeErr = err
			return
		}
		s, err := store.Open()
		if err != nil {
			c.storeErr = err
			return
		}
		if cfg.DemoData {
			if err := s.Seed(ctx); err != nil {
				_ = s.Close()
				c.storeErr = err
				return
			}
			c.ensureLogger().Debug("seeded demo data")
		}
		c.store = s
	})
	return c.store, c.storeErr
}

func (c *commandContext) aggregator(ctx context.Context) (*aggregate.Aggregator, error) {
	s, err := c.ensureStore(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.New(s), nil
}

func (c *commandContext) close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
