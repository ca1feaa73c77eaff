package cellular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/pixelgridgo/internal/registry"
	"github.com/vk/pixelgridgo/internal/schema"
)

// Shipped ID values are persisted in user documents. If this test fails,
// the change breaks every saved document and must not ship.
func TestShippedIDsNeverChange(t *testing.T) {
	t.Parallel()

	assert.EqualValues(t, 0, ParamInput)
	assert.EqualValues(t, 1, ParamSeed)
	assert.EqualValues(t, 2, ParamScale)
	assert.EqualValues(t, 3, ParamJitter)
	assert.EqualValues(t, 6, ParamReroll)
	assert.EqualValues(t, 10, ParamTransformScale)
}

func TestBuildParams(t *testing.T) {
	t.Parallel()

	l, err := BuildParams()
	require.NoError(t, err)
	assert.Equal(t, 6+schema.InputTransformCount, l.Len())

	reroll, ok := l.ByID(ParamReroll)
	require.True(t, ok)
	assert.Equal(t, schema.KindButton, reroll.Kind)
	assert.False(t, reroll.Numeric())

	jitter, ok := l.ByName("jitter")
	require.True(t, ok)
	assert.Equal(t, 0.0, jitter.Min)
	assert.Equal(t, 1.0, jitter.Max)
	assert.Equal(t, 1.0, jitter.Default)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	r := registry.New()
	(&Module{}).Register(r)

	e, ok := r.Effect("cellular")
	require.True(t, ok)
	assert.Equal(t, "Cellular", e.Info.DisplayName)
}
