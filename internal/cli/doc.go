// Package cli parses command-line arguments and environment overrides into
// the application configuration. It owns the user-facing usage text and the
// exit-code contract of the binary.
package cli
