// Package bake implements the Chef capability with an oven-baking
// technique.
package bake

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/BaSui01/pluginflow/cuisine"
	"github.com/BaSui01/pluginflow/plugin"
)

// Identifier is the plugin identifier this chef registers under.
const Identifier = "bake"

// Config holds bake chef settings.
type Config struct {
	// OvenTempC is the oven temperature in Celsius. Defaults to 220.
	OvenTempC int `json:"oven_temp_c" yaml:"oven_temp_c"`
	// BakeTime is how long the dish stays in the oven. Informational
	// only; Make does not sleep. Defaults to 25 minutes.
	BakeTime time.Duration `json:"bake_time" yaml:"bake_time"`
}

// Chef bakes dishes.
type Chef struct {
	cfg    Config
	logger *zap.Logger
}

// New creates a bake chef.
func New(cfg Config, logger *zap.Logger) *Chef {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.OvenTempC <= 0 {
		cfg.OvenTempC = 220
	}
	if cfg.BakeTime <= 0 {
		cfg.BakeTime = 25 * time.Minute
	}
	return &Chef{
		cfg:    cfg,
		logger: logger.With(zap.String("chef", Identifier)),
	}
}

// Make produces a baked dish.
func (c *Chef) Make(ctx context.Context) (*cuisine.Dish, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.logger.Debug("baking",
		zap.Int("oven_temp_c", c.cfg.OvenTempC),
		zap.Duration("bake_time", c.cfg.BakeTime))
	return cuisine.NewDish(Identifier,
		fmt.Sprintf("oven-baked dish, %s at %d°C", c.cfg.BakeTime, c.cfg.OvenTempC)), nil
}

// Info returns a ready-to-register descriptor for this chef.
func Info(cfg Config, logger *zap.Logger) *plugin.Info[cuisine.Chef] {
	return plugin.NewInfo(Identifier,
		func(ctx context.Context) (cuisine.Chef, error) {
			return New(cfg, logger), nil
		},
		plugin.WithSource("chefs/bake"),
		plugin.WithTags("oven"),
	)
}
