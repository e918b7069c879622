package gen

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGraph() *Graph {
	return NewGraph([]*Node{
		{Kind: KindScalar, Name: "DateTime", Description: "A point in time."},
		{Kind: KindEnum, Name: "Status", EnumValues: []*EnumValue{
			{Name: "ACTIVE"},
			{Name: "INACTIVE"},
		}},
		{Kind: KindInterface, Name: "Node", Fields: []*Field{
			{Name: "id", Type: NonNull(Named(KindScalar, "ID"))},
		}, PossibleTypes: []string{"User"}},
		{Kind: KindObject, Name: "User", Interfaces: []string{"Node"}, Fields: []*Field{
			{Name: "id", Type: NonNull(Named(KindScalar, "ID"))},
			{Name: "joined", Type: Named(KindScalar, "DateTime")},
			{Name: "status", Type: NonNull(Named(KindEnum, "Status"))},
		}},
		{Kind: KindInputObject, Name: "UserFilter", InputFields: []*InputValue{
			{Name: "status", Type: Named(KindEnum, "Status")},
		}},
		{Kind: KindObject, Name: "Query", Fields: []*Field{
			{Name: "node", Type: Named(KindInterface, "Node"), Args: []*InputValue{
				{Name: "id", Type: NonNull(Named(KindScalar, "ID"))},
			}},
		}},
		{Kind: KindObject, Name: "__Schema"},
	})
}

func TestGenerate(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	out, err := Generate(testGraph(), cfg)
	require.NoError(t, err)

	types := strings.Join(out.TypeLines, "\n")
	assert.Contains(t, types, "export type DateTime = any;")
	assert.Contains(t, types, "export enum Status {")
	assert.Contains(t, types, "export interface User extends Node {")
	assert.Contains(t, types, "  joined?: DateTime | null;")
	assert.Contains(t, types, "  status: Status;")
	assert.Contains(t, types, "export interface UserFilter {")
	assert.Contains(t, types, "export type PossibleNodeTypeNames = 'User';")

	resolvers := strings.Join(out.ResolverLines, "\n")
	assert.Contains(t, resolvers, "export interface Query_Node_Args {")
	assert.Contains(t, resolvers, "export interface QueryResolvers {")
	assert.Contains(t, resolvers, "  node?: Query_Node;")
	assert.Contains(t, resolvers, "export interface Resolvers {")

	// Introspection meta types produce nothing.
	assert.NotContains(t, types, "__Schema")
	assert.NotContains(t, resolvers, "__Schema")
}

func TestGenerateNilConfig(t *testing.T) {
	out, err := Generate(testGraph(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out.TypeLines)
}

func TestGenerateFailsWhole(t *testing.T) {
	// A doubly-nested list anywhere aborts the run with no output.
	g := NewGraph([]*Node{
		{Kind: KindObject, Name: "Safe", Fields: []*Field{
			{Name: "ok", Type: Named(KindScalar, "String")},
		}},
		{Kind: KindObject, Name: "Matrix", Fields: []*Field{
			{Name: "rows", Type: List(List(Named(KindScalar, "Float")))},
		}},
	})
	out, err := Generate(g, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedNesting))
	assert.Nil(t, out)
}

func TestGenerateUnknownKind(t *testing.T) {
	g := NewGraph([]*Node{{Kind: Kind("GADGET"), Name: "Gizmo"}})
	out, err := Generate(g, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKind))
	assert.Nil(t, out)
}

func TestOutputRender(t *testing.T) {
	cfg, err := NewConfig(WithHeader("/* banner */"))
	require.NoError(t, err)
	out, err := Generate(testGraph(), cfg)
	require.NoError(t, err)

	rendered := out.Render()
	assert.True(t, strings.HasPrefix(rendered, "/* banner */\n\n"))
	assert.Less(t, strings.Index(rendered, "export enum Status {"), strings.Index(rendered, "export interface Resolvers {"))

	types, resolvers := out.RenderSplit()
	assert.True(t, strings.HasPrefix(types, "/* banner */\n\n"))
	assert.True(t, strings.HasPrefix(resolvers, "/* banner */\n\n"))
	assert.Contains(t, resolvers, "export interface Resolvers {")
	assert.NotContains(t, types, "export interface Resolvers {")
}
