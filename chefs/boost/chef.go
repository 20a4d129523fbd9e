// Package boost implements the Chef capability with an energy-boost
// technique.
package boost

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BaSui01/pluginflow/cuisine"
	"github.com/BaSui01/pluginflow/plugin"
)

// Identifier is the plugin identifier this chef registers under.
const Identifier = "boost"

// Config holds boost chef settings.
type Config struct {
	// Power is the boost intensity, 1..10. Defaults to 3.
	Power int `json:"power" yaml:"power"`
}

// Chef boosts dishes.
type Chef struct {
	cfg    Config
	logger *zap.Logger
}

// New creates a boost chef.
func New(cfg Config, logger *zap.Logger) *Chef {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Power <= 0 {
		cfg.Power = 3
	}
	return &Chef{
		cfg:    cfg,
		logger: logger.With(zap.String("chef", Identifier)),
	}
}

// Make produces a boosted dish.
func (c *Chef) Make(ctx context.Context) (*cuisine.Dish, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.logger.Debug("boosting", zap.Int("power", c.cfg.Power))
	return cuisine.NewDish(Identifier,
		fmt.Sprintf("energy dish boosted at power %d", c.cfg.Power)), nil
}

// Info returns a ready-to-register descriptor for this chef.
func Info(cfg Config, logger *zap.Logger) *plugin.Info[cuisine.Chef] {
	return plugin.NewInfo(Identifier,
		func(ctx context.Context) (cuisine.Chef, error) {
			return New(cfg, logger), nil
		},
		plugin.WithSource("chefs/boost"),
		plugin.WithTags("energy"),
	)
}
