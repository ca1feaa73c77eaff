// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Entry, the descriptor for a single user-facing
// parameter, and the constructors for each parameter kind.

package schema

import "fmt"

// ID is the stable numeric identifier of a parameter. Shipped values are
// persisted inside user documents and must never change meaning.
type ID int32

// InputID is reserved for the host-supplied input layer. It never appears
// as a list entry; user-facing parameters start at ID 1.
const InputID ID = 0

// Kind enumerates the supported parameter kinds.
type Kind int

const (
	// KindSeed is an integer random-seed parameter.
	KindSeed Kind = iota + 1
	// KindFloat is a general floating-point slider parameter.
	KindFloat
	// KindAngle is a floating-point parameter rendered as an angle dial.
	KindAngle
	// KindButton is a momentary push button with no stored value.
	KindButton
)

// String returns the lower-case name of the kind, as used in lock files and
// describe output.
func (k Kind) String() string {
	switch k {
	case KindSeed:
		return "seed"
	case KindFloat:
		return "float"
	case KindAngle:
		return "angle"
	case KindButton:
		return "button"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Entry describes one user-facing parameter.
//
// For numeric kinds, Min and Max are the absolute legal range for stored
// values. SliderMin and SliderMax are the narrower range the host uses when
// rendering the slider; they constrain the UI only, never the stored value.
// Precision is the number of decimal places the host displays.
type Entry struct {
	ID    ID
	Name  string
	Label string
	Kind  Kind

	Min       float64
	Max       float64
	Default   float64
	SliderMin float64
	SliderMax float64
	Precision int
}

// Numeric reports whether the entry carries a stored numeric value.
func (e Entry) Numeric() bool {
	switch e.Kind {
	case KindSeed, KindFloat, KindAngle:
		return true
	default:
		return false
	}
}

// seedMax mirrors the widest seed value the host can persist (int32).
const seedMax = 2147483647

// Seed returns a random-seed parameter. Seeds are non-negative integers;
// the slider exposes a comfortable sub-range of the full int32 space.
func Seed(id ID, name, label string) Entry {
	return Entry{
		ID:        id,
		Name:      name,
		Label:     label,
		Kind:      KindSeed,
		Min:       0,
		Max:       seedMax,
		Default:   0,
		SliderMin: 0,
		SliderMax: 10000,
		Precision: 0,
	}
}

// Float returns a general numeric parameter with explicit absolute bounds,
// default, slider sub-range, and display precision.
func Float(id ID, name, label string, min, max, def, sliderMin, sliderMax float64, precision int) Entry {
	return Entry{
		ID:        id,
		Name:      name,
		Label:     label,
		Kind:      KindFloat,
		Min:       min,
		Max:       max,
		Default:   def,
		SliderMin: sliderMin,
		SliderMax: sliderMax,
		Precision: precision,
	}
}

// angleLimit bounds angle parameters to ±360 full turns.
const angleLimit = 129600

// Angle returns an angle parameter in degrees. The dial exposes a single
// turn; stored values may wind up to angleLimit in either direction.
func Angle(id ID, name, label string, def float64) Entry {
	return Entry{
		ID:        id,
		Name:      name,
		Label:     label,
		Kind:      KindAngle,
		Min:       -angleLimit,
		Max:       angleLimit,
		Default:   def,
		SliderMin: -360,
		SliderMax: 360,
		Precision: 1,
	}
}

// Button returns a momentary button parameter. Buttons have no stored value
// and cannot appear in presets.
func Button(id ID, name, label string) Entry {
	return Entry{
		ID:    id,
		Name:  name,
		Label: label,
		Kind:  KindButton,
	}
}

// validate checks the per-entry invariants. List.Append calls this before
// accepting an entry.
func (e Entry) validate() error {
	if e.ID == InputID {
		return fmt.Errorf("parameter %q: ID 0 is reserved for the host input layer", e.Name)
	}
	if e.ID < 0 {
		return fmt.Errorf("parameter %q: negative ID %d", e.Name, e.ID)
	}
	if e.Name == "" {
		return fmt.Errorf("parameter with ID %d has an empty name", e.ID)
	}
	switch e.Kind {
	case KindSeed, KindFloat, KindAngle:
		if e.Min > e.Max {
			return fmt.Errorf("parameter %q: min %g exceeds max %g", e.Name, e.Min, e.Max)
		}
		if e.SliderMin > e.SliderMax {
			return fmt.Errorf("parameter %q: slider min %g exceeds slider max %g", e.Name, e.SliderMin, e.SliderMax)
		}
		if e.SliderMin < e.Min || e.SliderMax > e.Max {
			return fmt.Errorf("parameter %q: slider range [%g, %g] is not a sub-range of [%g, %g]",
				e.Name, e.SliderMin, e.SliderMax, e.Min, e.Max)
		}
		if e.Default < e.Min || e.Default > e.Max {
			return fmt.Errorf("parameter %q: default %g outside absolute range [%g, %g]",
				e.Name, e.Default, e.Min, e.Max)
		}
		if e.Precision < 0 {
			return fmt.Errorf("parameter %q: negative display precision %d", e.Name, e.Precision)
		}
	case KindButton:
		// No numeric invariants.
	default:
		return fmt.Errorf("parameter %q: unknown kind %d", e.Name, int(e.Kind))
	}
	return nil
}
