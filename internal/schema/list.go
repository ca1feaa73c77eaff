// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines List, the insertion-ordered parameter list built once
// during the describe phase and treated as immutable afterwards.

package schema

import "fmt"

// List is an insertion-ordered sequence of parameter entries, unique by ID
// and by name. It is built once when the host describes the effect and is
// read-only from then on; it is safe for concurrent reads after Build-time
// construction completes.
type List struct {
	entries []Entry
	byID    map[ID]int
	byName  map[string]int
}

// NewList returns an empty parameter list.
func NewList() *List {
	return &List{
		byID:   make(map[ID]int),
		byName: make(map[string]int),
	}
}

// Append validates and appends entries in order. It fails fast on the first
// invalid entry: duplicate IDs, duplicate names, and inconsistent numeric
// bounds are construction-time fatal errors, because silently accepting
// them would corrupt slider rendering or persisted-value interpretation.
func (l *List) Append(entries ...Entry) error {
	for _, e := range entries {
		if err := e.validate(); err != nil {
			return err
		}
		if prev, exists := l.byID[e.ID]; exists {
			return fmt.Errorf("duplicate parameter ID %d: %q collides with %q", e.ID, e.Name, l.entries[prev].Name)
		}
		if _, exists := l.byName[e.Name]; exists {
			return fmt.Errorf("duplicate parameter name %q", e.Name)
		}
		l.byID[e.ID] = len(l.entries)
		l.byName[e.Name] = len(l.entries)
		l.entries = append(l.entries, e)
	}
	return nil
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries in insertion order.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// ByID looks an entry up by its stable numeric identifier.
func (l *List) ByID(id ID) (Entry, bool) {
	i, ok := l.byID[id]
	if !ok {
		return Entry{}, false
	}
	return l.entries[i], true
}

// ByName looks an entry up by its symbolic name.
func (l *List) ByName(name string) (Entry, bool) {
	i, ok := l.byName[name]
	if !ok {
		return Entry{}, false
	}
	return l.entries[i], true
}
