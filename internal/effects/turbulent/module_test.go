package turbulent

import (
	"testing"

	"github.com/google/go-cmp/cmp"
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
	assert.EqualValues(t, 3, ParamDirectionalBias)
	assert.EqualValues(t, 4, ParamEvolve1)
	assert.EqualValues(t, 5, ParamEvolve2)
	assert.EqualValues(t, 6, ParamTranslateX)
	assert.EqualValues(t, 9, ParamTransformScale)
}

func TestBuildParams_OrderAndContent(t *testing.T) {
	t.Parallel()

	l, err := BuildParams()
	require.NoError(t, err)

	var names []string
	for _, e := range l.Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{
		"seed", "scale", "directional_bias", "evolve1", "evolve2",
		"translate_x", "translate_y", "rotation", "transform_scale",
	}, names)

	scale, ok := l.ByName("scale")
	require.True(t, ok)
	assert.Equal(t, ParamScale, scale.ID)
	assert.Equal(t, schema.KindFloat, scale.Kind)
	assert.Equal(t, 0.0000001, scale.Min)
	assert.Equal(t, 10000.0, scale.Max)
	assert.Equal(t, 1.0, scale.Default)
	assert.Equal(t, 0.000001, scale.SliderMin)
	assert.Equal(t, 100.0, scale.SliderMax)
	assert.Equal(t, 2, scale.Precision)

	bias, ok := l.ByName("directional_bias")
	require.True(t, ok)
	assert.Equal(t, -10000.0, bias.Min)
	assert.Equal(t, 10000.0, bias.Max)
	assert.Equal(t, 0.0, bias.Default)
	assert.Equal(t, -100.0, bias.SliderMin)
	assert.Equal(t, 100.0, bias.SliderMax)
	assert.Equal(t, 2, bias.Precision)

	seed, ok := l.ByID(ParamSeed)
	require.True(t, ok)
	assert.Equal(t, schema.KindSeed, seed.Kind)
}

func TestBuildParams_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := BuildParams()
	require.NoError(t, err)
	second, err := BuildParams()
	require.NoError(t, err)

	if diff := cmp.Diff(first.Entries(), second.Entries()); diff != "" {
		t.Fatalf("two successive builds differ (-first +second):\n%s", diff)
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	r := registry.New()
	(&Module{}).Register(r)

	e, ok := r.Effect("turbulent")
	require.True(t, ok)
	assert.Equal(t, "Turbulent Noise", e.Info.DisplayName)
	require.NotNil(t, e.BuildParams)
}
