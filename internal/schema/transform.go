// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the shared input-transform parameter block appended by
// every effect in the suite after its own parameters.

package schema

// InputTransformCount is the number of entries AppendInputTransform adds.
// Effects reserve this many consecutive IDs for the block.
const InputTransformCount = 4

// AppendInputTransform appends the standard input-transform controls
// (translation, rotation, scale) shared by all effects in the suite,
// assigning consecutive IDs starting at first. It is a pure append: prior
// entries are never touched or reordered, and an ID collision with an
// existing entry is an error like any other duplicate.
func AppendInputTransform(l *List, first ID) error {
	return l.Append(
		Float(first, "translate_x", "Translate X", -100000, 100000, 0, -1000, 1000, 1),
		Float(first+1, "translate_y", "Translate Y", -100000, 100000, 0, -1000, 1000, 1),
		Angle(first+2, "rotation", "Rotation", 0),
		Float(first+3, "transform_scale", "Scale", 0.0000001, 10000, 1, 0.01, 10, 2),
	)
}
