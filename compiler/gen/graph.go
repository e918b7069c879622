package gen

import "strings"

// Kind is the closed tag set for type nodes and type references.
// The wrapper kinds NonNull and List are legal only inside a TypeRef chain.
type Kind string

const (
	KindScalar      Kind = "SCALAR"
	KindEnum        Kind = "ENUM"
	KindInputObject Kind = "INPUT_OBJECT"
	KindObject      Kind = "OBJECT"
	KindInterface   Kind = "INTERFACE"
	KindUnion       Kind = "UNION"

	// Wrapper kinds used by TypeRef modifier chains.
	KindNonNull Kind = "NON_NULL"
	KindList    Kind = "LIST"
)

// NamedKind reports whether k is a declaration kind, i.e. one that may
// appear on a Node or terminate a TypeRef chain.
func (k Kind) NamedKind() bool {
	switch k {
	case KindScalar, KindEnum, KindInputObject, KindObject, KindInterface, KindUnion:
		return true
	}
	return false
}

// TypeRef references a named type through a chain of NonNull/List wrappers.
// For wrapper kinds, Name is empty and OfType holds the wrapped reference.
// For named kinds, OfType is nil and Name holds the target type name.
type TypeRef struct {
	Kind   Kind
	Name   string
	OfType *TypeRef
}

// Named returns a TypeRef leaf for the given kind and name.
func Named(kind Kind, name string) *TypeRef {
	return &TypeRef{Kind: kind, Name: name}
}

// NonNull wraps ref in a NON_NULL modifier.
func NonNull(ref *TypeRef) *TypeRef {
	return &TypeRef{Kind: KindNonNull, OfType: ref}
}

// List wraps ref in a LIST modifier.
func List(ref *TypeRef) *TypeRef {
	return &TypeRef{Kind: KindList, OfType: ref}
}

// InputValue is a field argument or an input-object field.
type InputValue struct {
	Name        string
	Description string
	Type        *TypeRef
}

// Field is a single field of an object or interface type.
type Field struct {
	Name              string
	Description       string
	Args              []*InputValue
	Type              *TypeRef
	Deprecated        bool
	DeprecationReason string
}

// EnumValue is a single member of an enum type.
type EnumValue struct {
	Name              string
	Description       string
	Deprecated        bool
	DeprecationReason string
}

// Node is one named type in the graph. Kind selects which of the
// kind-specific slices are meaningful:
//
//   - Scalar: none
//   - Enum: EnumValues
//   - InputObject: InputFields
//   - Object: Fields, Interfaces
//   - Interface: Fields, PossibleTypes
//   - Union: PossibleTypes
type Node struct {
	Kind          Kind
	Name          string
	Description   string
	Fields        []*Field
	InputFields   []*InputValue
	Interfaces    []string
	EnumValues    []*EnumValue
	PossibleTypes []string
}

// Graph is the full reflected schema: an ordered collection of named
// type nodes. It is immutable input to the generator; declaration order
// of Nodes is output-significant.
type Graph struct {
	Nodes []*Node

	byName map[string]*Node
}

// NewGraph builds a graph over the given nodes, preserving their order.
func NewGraph(nodes []*Node) *Graph {
	g := &Graph{Nodes: nodes, byName: make(map[string]*Node, len(nodes))}
	for _, n := range nodes {
		g.byName[n.Name] = n
	}
	return g
}

// Lookup returns the node declared under name, or nil.
func (g *Graph) Lookup(name string) *Node {
	return g.byName[name]
}

// meta reports whether the node is part of the introspection machinery
// (double-underscore names). Meta types never produce declarations.
func (n *Node) meta() bool {
	return strings.HasPrefix(n.Name, "__")
}
