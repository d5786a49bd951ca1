// Package typed decodes vPIC records into domain structs.
//
// Client wraps the record-based vpic.Client with name normalization
// forced on, and maps every record through a typed decode: string
// fields are trimmed and default to "", numeric identifier fields
// become *int and default to nil, and a record missing its identity
// field (the VIN of a vehicle, the id of a make) fails with a
// MappingError carrying the offending record.
//
// Most attributes are optional by design: different vehicle types
// populate different subsets of the decoded variables, so emptiness is
// expected and never an error.
package typed
