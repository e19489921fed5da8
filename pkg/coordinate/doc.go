// Package coordinate models component coordinates for the clearlydefined.io
// service.
//
// # Overview
//
// A coordinate identifies a single component revision known to the service.
// Its canonical text form is slash-delimited:
//
//	shape/provider/namespace/name/version[/pr/number]
//
// For example, the syn crate on crates.io:
//
//	crate/cratesio/-/syn/1.0.14
//
// The namespace segment is the literal "-" for components without one
// (crates.io has no namespaces; GitHub uses the organization).
// The optional "pr" marker plus a GitHub PR number requests the result of
// applying a pending curation to the harvested data.
//
// # Parsing
//
//	coord, err := coordinate.Parse("crate/cratesio/-/syn/1.0.14")
//	fmt.Println(coord.Shape, coord.Name, coord.Version)
//
// Parsing and formatting are exact inverses: Parse(s).String() == s for every
// valid coordinate text.
//
// # Versions
//
// The service stores revisions from heterogeneous ecosystems under one
// textual field, so [Version] prefers strict semantic-version parsing and
// falls back to an opaque string that round-trips byte-for-byte. See
// [ParseVersion].
package coordinate
