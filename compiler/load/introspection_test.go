package load

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlts/gqlts/compiler/gen"
)

const testIntrospectionJSON = `{
  "data": {
    "__schema": {
      "types": [
        {
          "kind": "SCALAR",
          "name": "DateTime",
          "description": "A point in time."
        },
        {
          "kind": "ENUM",
          "name": "Status",
          "enumValues": [
            {"name": "ACTIVE", "isDeprecated": false},
            {"name": "OLD", "isDeprecated": true, "deprecationReason": "use ACTIVE"}
          ]
        },
        {
          "kind": "INTERFACE",
          "name": "Node",
          "fields": [
            {
              "name": "id",
              "args": [],
              "type": {"kind": "NON_NULL", "name": null, "ofType": {"kind": "SCALAR", "name": "ID", "ofType": null}},
              "isDeprecated": false
            }
          ],
          "possibleTypes": [{"kind": "OBJECT", "name": "User", "ofType": null}]
        },
        {
          "kind": "OBJECT",
          "name": "User",
          "fields": [
            {
              "name": "id",
              "args": [],
              "type": {"kind": "NON_NULL", "name": null, "ofType": {"kind": "SCALAR", "name": "ID", "ofType": null}},
              "isDeprecated": false
            },
            {
              "name": "friends",
              "args": [
                {"name": "first", "type": {"kind": "SCALAR", "name": "Int", "ofType": null}}
              ],
              "type": {"kind": "LIST", "name": null, "ofType": {"kind": "OBJECT", "name": "User", "ofType": null}},
              "isDeprecated": false
            }
          ],
          "interfaces": [{"kind": "INTERFACE", "name": "Node", "ofType": null}]
        },
        {
          "kind": "INPUT_OBJECT",
          "name": "UserFilter",
          "inputFields": [
            {"name": "status", "type": {"kind": "ENUM", "name": "Status", "ofType": null}}
          ]
        }
      ]
    }
  }
}`

func TestIntrospection(t *testing.T) {
	g, err := Introspection(strings.NewReader(testIntrospectionJSON))
	require.NoError(t, err)
	require.Len(t, g.Nodes, 5)

	scalar := g.Lookup("DateTime")
	require.NotNil(t, scalar)
	assert.Equal(t, gen.KindScalar, scalar.Kind)
	assert.Equal(t, "A point in time.", scalar.Description)

	status := g.Lookup("Status")
	require.NotNil(t, status)
	require.Len(t, status.EnumValues, 2)
	assert.True(t, status.EnumValues[1].Deprecated)
	assert.Equal(t, "use ACTIVE", status.EnumValues[1].DeprecationReason)

	user := g.Lookup("User")
	require.NotNil(t, user)
	assert.Equal(t, []string{"Node"}, user.Interfaces)
	require.Len(t, user.Fields, 2)
	friends := user.Fields[1]
	require.Equal(t, gen.KindList, friends.Type.Kind)
	assert.Equal(t, "User", friends.Type.OfType.Name)
	require.Len(t, friends.Args, 1)
	assert.Equal(t, "first", friends.Args[0].Name)

	iface := g.Lookup("Node")
	require.NotNil(t, iface)
	assert.Equal(t, []string{"User"}, iface.PossibleTypes)

	filter := g.Lookup("UserFilter")
	require.NotNil(t, filter)
	require.Len(t, filter.InputFields, 1)
	assert.Equal(t, gen.KindEnum, filter.InputFields[0].Type.Kind)
}

func TestIntrospectionBareSchema(t *testing.T) {
	bare := `{"__schema": {"types": [{"kind": "SCALAR", "name": "JSON"}]}}`
	g, err := Introspection(strings.NewReader(bare))
	require.NoError(t, err)
	require.Len(t, g.Nodes, 1)
	assert.Equal(t, "JSON", g.Nodes[0].Name)
}

func TestIntrospectionErrors(t *testing.T) {
	t.Run("graphql errors surface", func(t *testing.T) {
		payload := `{"errors": [{"message": "introspection is disabled"}]}`
		_, err := Introspection(strings.NewReader(payload))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "introspection is disabled")
	})

	t.Run("missing schema object", func(t *testing.T) {
		_, err := Introspection(strings.NewReader(`{"data": {}}`))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Introspection(strings.NewReader(`{"data":`))
		assert.Error(t, err)
	})

	t.Run("unnamed type", func(t *testing.T) {
		payload := `{"__schema": {"types": [{"kind": "OBJECT", "name": null}]}}`
		_, err := Introspection(strings.NewReader(payload))
		assert.Error(t, err)
	})
}

func TestIntrospectionGenerateEndToEnd(t *testing.T) {
	g, err := Introspection(strings.NewReader(testIntrospectionJSON))
	require.NoError(t, err)
	out, err := gen.Generate(g, nil)
	require.NoError(t, err)
	rendered := out.Render()
	assert.Contains(t, rendered, "export interface User extends Node {")
	assert.Contains(t, rendered, "export type DateTime = any;")
	assert.Contains(t, rendered, "export interface User_Friends_Args {")
}
