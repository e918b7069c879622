// Package load obtains a type graph for the generator, either by
// parsing schema-definition-language sources or by decoding the result
// of a standard introspection query. Both paths normalize to the same
// gen.Graph shape; the generator does not care which one produced it.
package load

import (
	"fmt"
	"os"
	"sort"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/gqlts/gqlts/compiler/gen"
)

// SDL parses one or more schema sources into a graph, preserving the
// order types are declared across the sources.
func SDL(sources ...*ast.Source) (*gen.Graph, error) {
	schema, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	return fromSchema(schema)
}

// SDLFile reads and parses the given schema files into a graph.
func SDLFile(paths ...string) (*gen.Graph, error) {
	sources := make([]*ast.Source, 0, len(paths))
	for _, p := range paths {
		src, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read schema file: %w", err)
		}
		sources = append(sources, &ast.Source{Name: p, Input: string(src)})
	}
	return SDL(sources...)
}

// fromSchema converts a parsed schema into the generator's graph,
// dropping the prelude definitions gqlparser injects.
func fromSchema(schema *ast.Schema) (*gen.Graph, error) {
	defs := make([]*ast.Definition, 0, len(schema.Types))
	for _, def := range schema.Types {
		if def.BuiltIn {
			continue
		}
		defs = append(defs, def)
	}
	sort.SliceStable(defs, func(i, j int) bool {
		return lessPosition(defs[i], defs[j])
	})
	nodes := make([]*gen.Node, 0, len(defs))
	for _, def := range defs {
		node, err := fromDefinition(schema, def)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return gen.NewGraph(nodes), nil
}

// lessPosition orders definitions by source file, then line, falling
// back to name for positionless definitions.
func lessPosition(a, b *ast.Definition) bool {
	ap, bp := a.Position, b.Position
	switch {
	case ap == nil && bp == nil:
		return a.Name < b.Name
	case ap == nil:
		return false
	case bp == nil:
		return true
	}
	an, bn := "", ""
	if ap.Src != nil {
		an = ap.Src.Name
	}
	if bp.Src != nil {
		bn = bp.Src.Name
	}
	if an != bn {
		return an < bn
	}
	if ap.Line != bp.Line {
		return ap.Line < bp.Line
	}
	return ap.Column < bp.Column
}

func fromDefinition(schema *ast.Schema, def *ast.Definition) (*gen.Node, error) {
	node := &gen.Node{
		Name:        def.Name,
		Description: def.Description,
	}
	switch def.Kind {
	case ast.Scalar:
		node.Kind = gen.KindScalar
	case ast.Enum:
		node.Kind = gen.KindEnum
		for _, v := range def.EnumValues {
			deprecated, reason := deprecation(v.Directives)
			node.EnumValues = append(node.EnumValues, &gen.EnumValue{
				Name:              v.Name,
				Description:       v.Description,
				Deprecated:        deprecated,
				DeprecationReason: reason,
			})
		}
	case ast.InputObject:
		node.Kind = gen.KindInputObject
		for _, f := range def.Fields {
			node.InputFields = append(node.InputFields, &gen.InputValue{
				Name:        f.Name,
				Description: f.Description,
				Type:        fromType(schema, f.Type),
			})
		}
	case ast.Object:
		node.Kind = gen.KindObject
		node.Interfaces = append(node.Interfaces, def.Interfaces...)
		node.Fields = fromFields(schema, def.Fields)
	case ast.Interface:
		node.Kind = gen.KindInterface
		node.Fields = fromFields(schema, def.Fields)
		for _, impl := range schema.PossibleTypes[def.Name] {
			node.PossibleTypes = append(node.PossibleTypes, impl.Name)
		}
	case ast.Union:
		node.Kind = gen.KindUnion
		node.PossibleTypes = append(node.PossibleTypes, def.Types...)
	default:
		return nil, fmt.Errorf("definition %q: unsupported kind %q", def.Name, def.Kind)
	}
	return node, nil
}

func fromFields(schema *ast.Schema, fields ast.FieldList) []*gen.Field {
	out := make([]*gen.Field, 0, len(fields))
	for _, f := range fields {
		deprecated, reason := deprecation(f.Directives)
		field := &gen.Field{
			Name:              f.Name,
			Description:       f.Description,
			Type:              fromType(schema, f.Type),
			Deprecated:        deprecated,
			DeprecationReason: reason,
		}
		for _, a := range f.Arguments {
			field.Args = append(field.Args, &gen.InputValue{
				Name:        a.Name,
				Description: a.Description,
				Type:        fromType(schema, a.Type),
			})
		}
		out = append(out, field)
	}
	return out
}

// fromType converts gqlparser's compact type notation (NamedType, Elem,
// NonNull) into the wrapper-chain form the generator decomposes.
func fromType(schema *ast.Schema, t *ast.Type) *gen.TypeRef {
	if t == nil {
		return nil
	}
	var ref *gen.TypeRef
	if t.NamedType != "" {
		ref = gen.Named(kindOf(schema, t.NamedType), t.NamedType)
	} else {
		ref = gen.List(fromType(schema, t.Elem))
	}
	if t.NonNull {
		ref = gen.NonNull(ref)
	}
	return ref
}

func kindOf(schema *ast.Schema, name string) gen.Kind {
	def := schema.Types[name]
	if def == nil {
		// Validation upstream guarantees referenced types exist; the
		// scalar default keeps conversion total regardless.
		return gen.KindScalar
	}
	switch def.Kind {
	case ast.Object:
		return gen.KindObject
	case ast.Interface:
		return gen.KindInterface
	case ast.Union:
		return gen.KindUnion
	case ast.Enum:
		return gen.KindEnum
	case ast.InputObject:
		return gen.KindInputObject
	default:
		return gen.KindScalar
	}
}

// deprecation reads the standard deprecated directive.
func deprecation(directives ast.DirectiveList) (bool, string) {
	d := directives.ForName("deprecated")
	if d == nil {
		return false, ""
	}
	if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
		return true, arg.Value.Raw
	}
	return true, ""
}
