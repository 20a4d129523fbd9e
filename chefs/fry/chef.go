// Package fry implements the Chef capability with a wok-frying
// technique.
package fry

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BaSui01/pluginflow/cuisine"
	"github.com/BaSui01/pluginflow/plugin"
)

// Identifier is the plugin identifier this chef registers under.
const Identifier = "fry"

// Config holds fry chef settings.
type Config struct {
	// OilTempC is the frying oil temperature in Celsius. Defaults to 180.
	OilTempC int `json:"oil_temp_c" yaml:"oil_temp_c"`
}

// Chef fries dishes.
type Chef struct {
	cfg    Config
	logger *zap.Logger
}

// New creates a fry chef.
func New(cfg Config, logger *zap.Logger) *Chef {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.OilTempC <= 0 {
		cfg.OilTempC = 180
	}
	return &Chef{
		cfg:    cfg,
		logger: logger.With(zap.String("chef", Identifier)),
	}
}

// Make produces a fried dish.
func (c *Chef) Make(ctx context.Context) (*cuisine.Dish, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.logger.Debug("frying", zap.Int("oil_temp_c", c.cfg.OilTempC))
	return cuisine.NewDish(Identifier,
		fmt.Sprintf("wok-fried dish at %d°C", c.cfg.OilTempC)), nil
}

// Info returns a ready-to-register descriptor for this chef.
func Info(cfg Config, logger *zap.Logger) *plugin.Info[cuisine.Chef] {
	return plugin.NewInfo(Identifier,
		func(ctx context.Context) (cuisine.Chef, error) {
			return New(cfg, logger), nil
		},
		plugin.WithSource("chefs/fry"),
		plugin.WithTags("wok"),
	)
}
