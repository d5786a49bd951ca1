// Package vpic is a client for the NHTSA Vehicle Product Information
// Catalog (vPIC) API.
//
// The upstream API is inconsistent in two ways this package smooths
// over. First, the same field is spelled differently depending on the
// endpoint ("Make_ID", "MakeID" and "MakeId" all carry a make
// identifier). Second, responses arrive in two incompatible shapes: most
// endpoints return a list of flat objects, while VIN decoding returns a
// list of Variable/Value pairs that must be pivoted into a flat record.
//
// Client resolves both at the response boundary: every operation returns
// flat Records whose keys are rewritten to canonical lower_snake_case
// names via per-endpoint alias tables. Unknown keys pass through
// verbatim, so an upstream field rename degrades to a raw key rather
// than an error. Normalization can be disabled with WithRawNames to
// receive the upstream spelling untouched.
//
// The typed subpackage wraps Client and decodes Records into domain
// structs (Vehicle, Make, Model, Manufacturer and friends).
package vpic
