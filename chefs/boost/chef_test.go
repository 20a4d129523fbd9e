package boost

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChef_Make(t *testing.T) {
	chef := New(Config{Power: 7}, nil)

	dish, err := chef.Make(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Identifier, dish.Technique)
	assert.Contains(t, dish.Description, "power 7")
}

func TestChef_DefaultPower(t *testing.T) {
	chef := New(Config{}, nil)

	dish, err := chef.Make(context.Background())
	require.NoError(t, err)
	assert.Contains(t, dish.Description, "power 3")
}

func TestChef_CancelledContext(t *testing.T) {
	chef := New(Config{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := chef.Make(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInfo(t *testing.T) {
	info := Info(Config{}, nil)
	assert.Equal(t, Identifier, info.Identifier())
	assert.Equal(t, "chefs/boost", info.Source())
	assert.True(t, info.Matches("energy"))

	chef, err := info.Instantiate(context.Background())
	require.NoError(t, err)
	dish, err := chef.Make(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Identifier, dish.Technique)
}
