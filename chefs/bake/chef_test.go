package bake

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChef_Make(t *testing.T) {
	chef := New(Config{OvenTempC: 200, BakeTime: 40 * time.Minute}, nil)

	dish, err := chef.Make(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Identifier, dish.Technique)
	assert.Contains(t, dish.Description, "200°C")
	assert.Contains(t, dish.Description, "40m")
}

func TestChef_Defaults(t *testing.T) {
	chef := New(Config{}, nil)

	dish, err := chef.Make(context.Background())
	require.NoError(t, err)
	assert.Contains(t, dish.Description, "220°C")
	assert.Contains(t, dish.Description, "25m")
}

func TestInfo(t *testing.T) {
	info := Info(Config{}, nil)
	assert.Equal(t, Identifier, info.Identifier())
	assert.True(t, info.Matches("oven"))

	chef, err := info.Instantiate(context.Background())
	require.NoError(t, err)
	dish, err := chef.Make(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Identifier, dish.Technique)
}
