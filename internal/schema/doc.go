// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package schema defines the parameter schema data model for a pixel
// generator effect: stable numeric identifiers, parameter descriptors, and
// the ordered list handed to the host during the describe phase.
//
// Why stable identifiers?
//
// The hosting application persists user documents that reference parameters
// by their numeric ID, not by name. A document saved with version 1.0 of an
// effect must still resolve its values against version 2.0. IDs are
// therefore append-only: once an ID has shipped it is never reassigned,
// renumbered, or removed. The schemalock package enforces this contract at
// startup; this package enforces the per-list invariants (unique IDs,
// consistent numeric bounds) at build time.
package schema
