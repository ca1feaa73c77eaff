// Package registry provides the central "glue" for the effect suite.
//
// The Registry stores the mapping between an effect's type name (e.g.
// "turbulent") and the compiled Go code that declares it: its display
// metadata and its parameter-schema builder. During application startup the
// registry is populated by the compiled-in effect modules and then every
// schema is built and validated, so that a malformed parameter table fails
// the describe phase instead of surfacing as a broken host UI.
package registry
