package gen

import "github.com/go-openapi/inflect"

// typeName returns the declared name for a generated type: the
// configured prefix followed by the schema name.
func (c *Config) typeName(name string) string {
	return c.TypePrefix + name
}

// possibleNamesAlias is the literal union of concrete type names for an
// interface or union type.
func (c *Config) possibleNamesAlias(name string) string {
	return c.typeName("Possible" + name + "TypeNames")
}

// nameMapName is the interface mapping each possible type name to its
// declared type.
func (c *Config) nameMapName(name string) string {
	return c.typeName(name + "NameMap")
}

// fieldSymbol returns the deterministic symbol for a field's resolver
// type: owner name joined to the capitalized field name. Collisions
// under capitalization are detected by the resolver builder.
func (c *Config) fieldSymbol(owner, field string) string {
	return c.typeName(owner + "_" + inflect.Capitalize(field))
}

// argsSymbol returns the name of a field's synthesized arguments type.
func (c *Config) argsSymbol(owner, field string) string {
	return c.fieldSymbol(owner, field) + "_Args"
}

// resolversName is the per-type resolver map interface name.
func (c *Config) resolversName(owner string) string {
	return c.typeName(owner + "Resolvers")
}

// resolveTypeName is the discriminator function type name for an
// interface or union.
func (c *Config) resolveTypeName(owner string) string {
	return c.typeName(owner + "_ResolveType")
}

// rootResolversName is the aggregate resolver map interface name.
func (c *Config) rootResolversName() string {
	return c.typeName("Resolvers")
}
