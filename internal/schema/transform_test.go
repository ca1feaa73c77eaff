package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendInputTransform(t *testing.T) {
	t.Parallel()

	l := NewList()
	require.NoError(t, l.Append(Seed(1, "seed", "Seed")))

	before := l.Entries()
	require.NoError(t, AppendInputTransform(l, 2))

	entries := l.Entries()
	require.Equal(t, 1+InputTransformCount, len(entries))

	// Pure append: the existing prefix is untouched.
	if diff := cmp.Diff(before, entries[:1]); diff != "" {
		t.Fatalf("prior entries changed (-before +after):\n%s", diff)
	}

	names := make([]string, 0, InputTransformCount)
	for _, e := range entries[1:] {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"translate_x", "translate_y", "rotation", "transform_scale"}, names)

	rotation, ok := l.ByName("rotation")
	require.True(t, ok)
	assert.Equal(t, ID(4), rotation.ID)
	assert.Equal(t, KindAngle, rotation.Kind)
}

func TestAppendInputTransform_CollisionFails(t *testing.T) {
	t.Parallel()

	l := NewList()
	require.NoError(t, l.Append(Seed(3, "seed", "Seed")))

	// The block would claim IDs 2..5, colliding with the existing seed at 3.
	err := AppendInputTransform(l, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate parameter ID 3")
}
