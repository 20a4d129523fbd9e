package plugin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget interface {
	Kind() string
}

type fakeWidget struct {
	kind string
}

func (f *fakeWidget) Kind() string { return f.kind }

func widgetFactory(kind string) Factory[widget] {
	return func(ctx context.Context) (widget, error) {
		return &fakeWidget{kind: kind}, nil
	}
}

func TestNewInfo_Defaults(t *testing.T) {
	info := NewInfo("Gear", widgetFactory("gear"))

	assert.Equal(t, "gear", info.Identifier(), "identifier is lowercased")
	assert.Equal(t, "unknown", info.Source())
	assert.Empty(t, info.Tags())
}

func TestNewInfo_Options(t *testing.T) {
	info := NewInfo("gear", widgetFactory("gear"),
		WithTags("Cog", "sprocket"),
		WithSource("widgets/gear"))

	assert.Equal(t, []string{"cog", "sprocket"}, info.Tags(), "tags are lowercased")
	assert.Equal(t, "widgets/gear", info.Source())
}

func TestInfo_Matches(t *testing.T) {
	info := NewInfo("gear", widgetFactory("gear"), WithTags("cog"))

	tests := []struct {
		name  string
		key   string
		match bool
	}{
		{name: "exact identifier", key: "gear", match: true},
		{name: "identifier case-insensitive", key: "GEAR", match: true},
		{name: "tag", key: "cog", match: true},
		{name: "tag case-insensitive", key: "CoG", match: true},
		{name: "unknown key", key: "lever", match: false},
		{name: "empty key", key: "", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, info.Matches(tt.key))
		})
	}
}

func TestInfo_Instantiate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		info := NewInfo("gear", widgetFactory("gear"))
		inst, err := info.Instantiate(ctx)
		require.NoError(t, err)
		assert.Equal(t, "gear", inst.Kind())
	})

	t.Run("factory error wraps as instantiation failure", func(t *testing.T) {
		boom := errors.New("boom")
		info := NewInfo[widget]("gear", func(ctx context.Context) (widget, error) {
			return nil, boom
		})
		_, err := info.Instantiate(ctx)
		require.Error(t, err)
		assert.True(t, IsInstantiation(err))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("nil instance rejected", func(t *testing.T) {
		info := NewInfo[widget]("gear", func(ctx context.Context) (widget, error) {
			return nil, nil
		})
		_, err := info.Instantiate(ctx)
		require.Error(t, err)
		assert.True(t, IsInstantiation(err))
	})

	t.Run("typed nil pointer rejected", func(t *testing.T) {
		info := NewInfo[widget]("gear", func(ctx context.Context) (widget, error) {
			var w *fakeWidget
			return w, nil
		})
		_, err := info.Instantiate(ctx)
		require.Error(t, err)
		assert.True(t, IsInstantiation(err))
	})

	t.Run("nil factory rejected", func(t *testing.T) {
		info := NewInfo[widget]("gear", nil)
		_, err := info.Instantiate(ctx)
		require.Error(t, err)
		assert.True(t, IsInstantiation(err))
	})
}

func TestInfo_String(t *testing.T) {
	info := NewInfo("gear", widgetFactory("gear"), WithSource("widgets/gear"))
	assert.Equal(t, "plugin(gear from widgets/gear)", info.String())
}
