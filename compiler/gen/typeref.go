package gen

import "strings"

// Modifier is one nullability/list wrapper token in a canonical
// modifier stack, read outer-to-inner.
type Modifier uint8

const (
	// ModNonNull marks the wrapped type as non-nullable.
	ModNonNull Modifier = iota
	// ModList wraps the type in a list.
	ModList
)

// String returns the token name.
func (m Modifier) String() string {
	if m == ModNonNull {
		return "NON_NULL"
	}
	return "LIST"
}

// typeSpec is the canonical decomposition of a TypeRef: the wrapper
// tokens outer-to-inner plus the named leaf they terminate in.
type typeSpec struct {
	mods []Modifier
	leaf *TypeRef
}

// decompose peels LIST and NON_NULL wrappers in encountered order until
// a named leaf is reached. The type/field names are carried for error
// reporting only.
func decompose(ref *TypeRef, typeName, fieldName string) (*typeSpec, error) {
	spec := &typeSpec{}
	for ref != nil {
		switch ref.Kind {
		case KindNonNull:
			spec.mods = append(spec.mods, ModNonNull)
			ref = ref.OfType
		case KindList:
			spec.mods = append(spec.mods, ModList)
			ref = ref.OfType
		default:
			if !ref.Kind.NamedKind() || ref.Name == "" {
				return nil, NewShapeError(typeName, fieldName)
			}
			spec.leaf = ref
			return spec, nil
		}
	}
	return nil, NewShapeError(typeName, fieldName)
}

// renderings is the exhaustive table of modifier stacks the target
// signature grammar supports. Keys are the stack tokens joined outer to
// inner; values are templates over the leaf type expression.
var renderings = map[string]struct {
	template string
	required bool // whether a field of this shape must be present
}{
	"":                       {template: "%s | null"},
	"NON_NULL":               {template: "%s", required: true},
	"LIST":                   {template: "(%s | null)[] | null"},
	"LIST NON_NULL":          {template: "%s[] | null"},
	"NON_NULL LIST":          {template: "(%s | null)[]", required: true},
	"NON_NULL LIST NON_NULL": {template: "%s[]", required: true},
}

// stackKey joins a modifier stack into its table key.
func stackKey(mods []Modifier) string {
	tokens := make([]string, len(mods))
	for i, m := range mods {
		tokens[i] = m.String()
	}
	return strings.Join(tokens, " ")
}

// renderType recomposes a canonical modifier stack around an already
// resolved leaf type expression. Stacks outside the rendering table
// carry a second list wrapper and are rejected: two-dimensional lists
// have no defined rendering in the target grammar.
func renderType(mods []Modifier, leafExpr, typeName, fieldName string) (string, error) {
	r, ok := renderings[stackKey(mods)]
	if !ok {
		return "", NewNestingError(typeName, fieldName)
	}
	return strings.Replace(r.template, "%s", leafExpr, 1), nil
}

// fieldRequired reports whether a field with the given modifier stack
// must be declared required. Only stacks whose outermost modifier is
// NON_NULL produce required fields; every other shape already admits
// null, so the field is also made omissible for ergonomic construction.
func fieldRequired(mods []Modifier) bool {
	r, ok := renderings[stackKey(mods)]
	return ok && r.required
}

// renderFieldDeclaration renders a single structural field line,
// deciding the field's own optionality from the outermost modifier.
func renderFieldDeclaration(fieldName string, mods []Modifier, leafExpr, typeName string) (string, error) {
	expr, err := renderType(mods, leafExpr, typeName, fieldName)
	if err != nil {
		return "", err
	}
	marker := "?"
	if fieldRequired(mods) {
		marker = ""
	}
	return fieldName + marker + ": " + expr + ";", nil
}
