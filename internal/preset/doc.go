// Package preset loads saved parameter-value documents and validates them
// against an effect's built schema.
//
// Presets reference parameters by symbolic name; the host's own documents
// use numeric IDs, but both resolve through the same schema, so preset
// validation exercises the same bounds the host relies on. Two on-disk
// formats are supported behind one Loader interface, HCL and YAML, chosen
// by file extension.
package preset
