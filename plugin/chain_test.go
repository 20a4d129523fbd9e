package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func widgetInfo(id string, opts ...InfoOption) *Info[widget] {
	return NewInfo(id, widgetFactory(id), opts...)
}

func TestChain_RegisterAndResolve(t *testing.T) {
	chain := NewChain[widget]("widget")

	require.NoError(t, chain.Register(widgetInfo("gear")))
	require.NoError(t, chain.Register(widgetInfo("lever", WithTags("handle"))))

	tests := []struct {
		name    string
		key     string
		wantID  string
		wantErr bool
	}{
		{name: "by identifier", key: "gear", wantID: "gear"},
		{name: "case-insensitive", key: "GEAR", wantID: "gear"},
		{name: "by tag", key: "handle", wantID: "lever"},
		{name: "missing", key: "pulley", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := chain.Resolve(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsNotFound(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, info.Identifier())
		})
	}
}

func TestChain_ResolveEmpty(t *testing.T) {
	chain := NewChain[widget]("widget")

	_, err := chain.Resolve("gear")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestChain_RegisterNil(t *testing.T) {
	chain := NewChain[widget]("widget")
	assert.Error(t, chain.Register(nil))
}

func TestChain_FirstRegisteredWins(t *testing.T) {
	chain := NewChain[widget]("widget")

	require.NoError(t, chain.Register(widgetInfo("gear", WithSource("pkg-a"))))
	require.NoError(t, chain.Register(widgetInfo("gear", WithSource("pkg-b"))))

	info, err := chain.Resolve("gear")
	require.NoError(t, err)
	assert.Equal(t, "pkg-a", info.Source(), "first registration shadows later ones")

	assert.Equal(t, []string{"gear"}, chain.Identifiers(), "shadowed duplicate not listed twice")
	assert.Equal(t, 1, chain.Len())
}

func TestChain_PolicyReject(t *testing.T) {
	chain := NewChain[widget]("widget", WithPolicy(PolicyReject))

	require.NoError(t, chain.Register(widgetInfo("gear")))
	err := chain.Register(widgetInfo("gear"))
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))

	// Unrelated identifiers still register.
	assert.NoError(t, chain.Register(widgetInfo("lever")))
}

func TestChain_IdentifiersOrder(t *testing.T) {
	chain := NewChain[widget]("widget")

	for _, id := range []string{"boost", "fry", "bake"} {
		require.NoError(t, chain.Register(widgetInfo(id)))
	}

	assert.Equal(t, []string{"boost", "fry", "bake"}, chain.Identifiers(),
		"enumeration follows registration precedence order")
}

func TestChain_AddSource(t *testing.T) {
	contrib := NewChain[widget]("widget-contrib")
	require.NoError(t, contrib.Register(widgetInfo("gear", WithSource("contrib"))))
	require.NoError(t, contrib.Register(widgetInfo("pulley", WithSource("contrib"))))

	chain := NewChain[widget]("widget")
	require.NoError(t, chain.Register(widgetInfo("gear", WithSource("direct"))))
	chain.AddSource(contrib)
	require.NoError(t, chain.Register(widgetInfo("lever", WithSource("direct"))))

	// Direct "gear" registered before the source wins the conflict.
	info, err := chain.Resolve("gear")
	require.NoError(t, err)
	assert.Equal(t, "direct", info.Source())

	// Source entries slot in at link position.
	assert.Equal(t, []string{"gear", "pulley", "lever"}, chain.Identifiers())
}

func TestChain_AddSourceNil(t *testing.T) {
	chain := NewChain[widget]("widget")
	chain.AddSource(nil)
	assert.Equal(t, 0, chain.Len())
}

func TestChain_PolicyRejectSeesSources(t *testing.T) {
	contrib := NewChain[widget]("widget-contrib")
	require.NoError(t, contrib.Register(widgetInfo("gear")))

	chain := NewChain[widget]("widget", WithPolicy(PolicyReject))
	chain.AddSource(contrib)

	err := chain.Register(widgetInfo("gear"))
	require.Error(t, err)
	assert.True(t, IsDuplicate(err), "identifiers from linked sources also conflict")
}

func TestChain_AllIsRestartable(t *testing.T) {
	chain := NewChain[widget]("widget")
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, chain.Register(widgetInfo(id)))
	}

	seq := chain.All()

	var first []string
	for info := range seq {
		first = append(first, info.Identifier())
	}
	var second []string
	for info := range seq {
		second = append(second, info.Identifier())
	}
	assert.Equal(t, first, second, "All yields the same sequence on every restart")
}

func TestChain_AllEarlyStop(t *testing.T) {
	chain := NewChain[widget]("widget")
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, chain.Register(widgetInfo(id)))
	}

	var got []string
	for info := range chain.All() {
		got = append(got, info.Identifier())
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestChain_InfosIncludesShadowed(t *testing.T) {
	chain := NewChain[widget]("widget")
	require.NoError(t, chain.Register(widgetInfo("gear", WithSource("pkg-a"))))
	require.NoError(t, chain.Register(widgetInfo("gear", WithSource("pkg-b"))))

	var sources []string
	for info := range chain.Infos() {
		sources = append(sources, info.Source())
	}
	assert.Equal(t, []string{"pkg-a", "pkg-b"}, sources)
}
