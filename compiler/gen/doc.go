// Package gen translates a reflected GraphQL type graph into TypeScript
// declaration files: type aliases, structural interfaces, enums, unions,
// and generic resolver signature types.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	Schema source (SDL file or introspection result)
//	        ↓
//	   Graph (kind-tagged nodes with fields and type references)
//	        ↓
//	   emitter (schema-shape declarations)
//	        ↓
//	   resolverBuilder (per-field resolver signatures)
//	        ↓
//	   Output (wrapped, header-prefixed declaration text)
//
// # Key Types
//
// The package provides several key types:
//
//   - Graph: Holds all Node definitions with name lookup
//   - Node: A named schema type with fields, enum values, members
//   - TypeRef: A type reference with NON_NULL and LIST modifiers
//   - Config: Global configuration for declaration output
//   - Output: The generated declaration and resolver line sets
//
// Generation is all-or-nothing: the first unsupported shape, dangling
// interface reference, naming collision, or unknown kind aborts the run
// with a typed error, and no partial output is produced.
package gen
