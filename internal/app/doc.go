// Package app wires the application together: logger, effect registry,
// schema build, lock check, preset validation, and describe output. Startup
// failures that indicate a programmer error (a broken parameter table, lock
// drift) panic; the binary entrypoint recovers and reports them as an
// initialization failure.
package app
