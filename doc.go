// Package gqlts turns a reflected GraphQL schema into TypeScript
// declarations: plain type aliases, structural interfaces, enums,
// tagged unions, and generic resolver signature types.
//
// The engine lives in compiler/gen and is a pure function from a type
// graph plus configuration to ordered source text. Schema input comes
// from compiler/load, which normalizes SDL files and introspection
// results to the same graph shape. The gqlts command in cmd/gqlts ties
// the two together.
package gqlts

// Version is the gqlts release version.
const Version = "0.3.0"
