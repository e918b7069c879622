package load

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gqlts/gqlts/compiler/gen"
)

// introspectionQuery is the canonical query sent to a live endpoint.
// Only the pieces the generator consumes are requested.
const introspectionQuery = `query IntrospectionQuery {
  __schema {
    types {
      ...FullType
    }
  }
}
fragment FullType on __Type {
  kind
  name
  description
  fields(includeDeprecated: true) {
    name
    description
    args {
      ...InputValue
    }
    type {
      ...TypeRef
    }
    isDeprecated
    deprecationReason
  }
  inputFields {
    ...InputValue
  }
  interfaces {
    ...TypeRef
  }
  enumValues(includeDeprecated: true) {
    name
    description
    isDeprecated
    deprecationReason
  }
  possibleTypes {
    ...TypeRef
  }
}
fragment InputValue on __InputValue {
  name
  description
  type {
    ...TypeRef
  }
}
fragment TypeRef on __Type {
  kind
  name
  ofType {
    kind
    name
    ofType {
      kind
      name
      ofType {
        kind
        name
        ofType {
          kind
          name
          ofType {
            kind
            name
            ofType {
              kind
              name
            }
          }
        }
      }
    }
  }
}`

// Shapes of the standard introspection result. Pointer fields mirror
// the nullability of the introspection schema itself.
type (
	introspectionEnvelope struct {
		Data   *introspectionData  `json:"data"`
		Errors []introspectionFail `json:"errors"`

		// Some tools persist the bare data object instead of the
		// full response envelope.
		Schema *introspectionSchema `json:"__schema"`
	}

	introspectionFail struct {
		Message string `json:"message"`
	}

	introspectionData struct {
		Schema *introspectionSchema `json:"__schema"`
	}

	introspectionSchema struct {
		Types []*fullType `json:"types"`
	}

	fullType struct {
		Kind          string        `json:"kind"`
		Name          *string       `json:"name"`
		Description   *string       `json:"description"`
		Fields        []*fieldValue `json:"fields"`
		InputFields   []*inputValue `json:"inputFields"`
		Interfaces    []*typeRef    `json:"interfaces"`
		EnumValues    []*enumValue  `json:"enumValues"`
		PossibleTypes []*typeRef    `json:"possibleTypes"`
	}

	fieldValue struct {
		Name              string        `json:"name"`
		Description       *string       `json:"description"`
		Args              []*inputValue `json:"args"`
		Type              *typeRef      `json:"type"`
		IsDeprecated      bool          `json:"isDeprecated"`
		DeprecationReason *string       `json:"deprecationReason"`
	}

	inputValue struct {
		Name        string   `json:"name"`
		Description *string  `json:"description"`
		Type        *typeRef `json:"type"`
	}

	enumValue struct {
		Name              string  `json:"name"`
		Description       *string `json:"description"`
		IsDeprecated      bool    `json:"isDeprecated"`
		DeprecationReason *string `json:"deprecationReason"`
	}

	typeRef struct {
		Kind   string   `json:"kind"`
		Name   *string  `json:"name"`
		OfType *typeRef `json:"ofType"`
	}
)

// Introspection decodes an introspection query result into a graph. It
// accepts either the full response envelope or the bare __schema object.
func Introspection(r io.Reader) (*gen.Graph, error) {
	var env introspectionEnvelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode introspection result: %w", err)
	}
	if len(env.Errors) > 0 {
		return nil, fmt.Errorf("introspection failed: %s", env.Errors[0].Message)
	}
	schema := env.Schema
	if schema == nil && env.Data != nil {
		schema = env.Data.Schema
	}
	if schema == nil {
		return nil, fmt.Errorf("introspection result carries no __schema object")
	}
	nodes := make([]*gen.Node, 0, len(schema.Types))
	for _, t := range schema.Types {
		node, err := fromFullType(t)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return gen.NewGraph(nodes), nil
}

// IntrospectionFile decodes a stored introspection result file.
func IntrospectionFile(path string) (*gen.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open introspection file: %w", err)
	}
	defer f.Close()
	return Introspection(f)
}

// FetchIntrospection runs the introspection query against a live
// endpoint and decodes the response. A nil client falls back to
// http.DefaultClient.
func FetchIntrospection(ctx context.Context, client *http.Client, endpoint string) (*gen.Graph, error) {
	if client == nil {
		client = http.DefaultClient
	}
	body, err := json.Marshal(map[string]string{"query": introspectionQuery})
	if err != nil {
		return nil, fmt.Errorf("marshal introspection query: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build introspection request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("introspect %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("introspect %s: unexpected status %s", endpoint, resp.Status)
	}
	return Introspection(resp.Body)
}

func fromFullType(t *fullType) (*gen.Node, error) {
	if t.Name == nil {
		return nil, fmt.Errorf("introspection type without a name (kind %s)", t.Kind)
	}
	node := &gen.Node{
		Kind:        gen.Kind(t.Kind),
		Name:        *t.Name,
		Description: deref(t.Description),
	}
	for _, f := range t.Fields {
		field := &gen.Field{
			Name:              f.Name,
			Description:       deref(f.Description),
			Type:              fromTypeRef(f.Type),
			Deprecated:        f.IsDeprecated,
			DeprecationReason: deref(f.DeprecationReason),
		}
		for _, a := range f.Args {
			field.Args = append(field.Args, &gen.InputValue{
				Name:        a.Name,
				Description: deref(a.Description),
				Type:        fromTypeRef(a.Type),
			})
		}
		node.Fields = append(node.Fields, field)
	}
	for _, f := range t.InputFields {
		node.InputFields = append(node.InputFields, &gen.InputValue{
			Name:        f.Name,
			Description: deref(f.Description),
			Type:        fromTypeRef(f.Type),
		})
	}
	for _, ref := range t.Interfaces {
		if ref.Name != nil {
			node.Interfaces = append(node.Interfaces, *ref.Name)
		}
	}
	for _, v := range t.EnumValues {
		node.EnumValues = append(node.EnumValues, &gen.EnumValue{
			Name:              v.Name,
			Description:       deref(v.Description),
			Deprecated:        v.IsDeprecated,
			DeprecationReason: deref(v.DeprecationReason),
		})
	}
	for _, ref := range t.PossibleTypes {
		if ref.Name != nil {
			node.PossibleTypes = append(node.PossibleTypes, *ref.Name)
		}
	}
	return node, nil
}

// fromTypeRef keeps the wrapper chain exactly as received; validation
// of the chain is the generator's job.
func fromTypeRef(ref *typeRef) *gen.TypeRef {
	if ref == nil {
		return nil
	}
	return &gen.TypeRef{
		Kind:   gen.Kind(ref.Kind),
		Name:   deref(ref.Name),
		OfType: fromTypeRef(ref.OfType),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
