package gen

// builtinScalars maps the well-known GraphQL scalars to TypeScript
// primitives.
var builtinScalars = map[string]string{
	"Int":     "number",
	"Float":   "number",
	"String":  "string",
	"ID":      "string",
	"Boolean": "boolean",
}

// scalarFallback is the underlying type for custom scalars without an
// explicit override mapping.
const scalarFallback = "any"

// BuiltinScalar reports whether name is one of the built-in scalars and
// returns its TypeScript primitive.
func BuiltinScalar(name string) (string, bool) {
	ts, ok := builtinScalars[name]
	return ts, ok
}

// resolveScalar maps a scalar name to the type expression used wherever
// the scalar is referenced: the built-in primitive, the configured
// override, or the synthesized prefixed alias name. Unknown scalars
// always resolve deterministically; there is no fallible path.
func (c *Config) resolveScalar(name string) string {
	if ts, ok := builtinScalars[name]; ok {
		return ts
	}
	if ts, ok := c.Scalars[name]; ok {
		return ts
	}
	return c.typeName(name)
}

// scalarUnderlying is the right-hand side of a custom scalar's alias
// declaration: the override when configured, the permissive fallback
// otherwise.
func (c *Config) scalarUnderlying(name string) string {
	if ts, ok := c.Scalars[name]; ok {
		return ts
	}
	return scalarFallback
}

// leafExpr resolves a decomposed leaf reference to its TypeScript
// expression: scalars go through the scalar mapping, everything else is
// the prefixed declared name.
func (c *Config) leafExpr(leaf *TypeRef) string {
	if leaf.Kind == KindScalar {
		return c.resolveScalar(leaf.Name)
	}
	return c.typeName(leaf.Name)
}
