// Package schemalock enforces the stable-identifier contract of the suite.
//
// The host application persists user documents that reference parameters by
// numeric ID. A committed lock file records every (effect, parameter, ID)
// triple that has shipped; at startup the built schemas are checked against
// it. Appending new parameters is allowed, but removing a locked parameter
// or changing its ID would break every saved document and fails the check.
package schemalock
