package gen

// DefaultHeader is prepended to generated output unless overridden.
const DefaultHeader = "/* Code generated by gqlts. DO NOT EDIT. */"

// DefaultContextType is the resolver context type used when the
// configuration does not name one.
const DefaultContextType = "any"

// Config holds the global configuration for a generation run. A Config
// is immutable once passed to Generate; concurrent runs must not share
// the Scalars map.
type Config struct {
	// TypePrefix is prepended to every generated type name, keeping
	// generated symbols clear of hand-written code.
	TypePrefix string

	// ContextType is the ambient context type threaded through every
	// resolver function signature.
	ContextType string

	// Scalars maps custom scalar names to TypeScript type expressions,
	// overriding the default "any" fallback.
	Scalars map[string]string

	// MergeInherited suppresses re-declaring fields already contributed
	// by an implemented interface.
	MergeInherited bool

	// GlobalOutput emits declarations for the global scope: no export
	// keywords, and enums as string-literal unions since the enum
	// construct requires an import unavailable there.
	GlobalOutput bool

	// EnumSyntax selects first-class TypeScript enums over literal
	// unions. Ignored when GlobalOutput is set.
	EnumSyntax bool

	// Header is the comment placed at the top of each generated file.
	Header string
}

// NewConfig returns a Config with defaults applied, then modified by
// the given options.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		ContextType: DefaultContextType,
		EnumSyntax:  true,
		Header:      DefaultHeader,
		Scalars:     make(map[string]string),
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// exportPrefix returns the keyword prefix for top-level declarations.
func (c *Config) exportPrefix() string {
	if c.GlobalOutput {
		return ""
	}
	return "export "
}

// literalEnums reports whether enums render as string-literal unions.
func (c *Config) literalEnums() bool {
	return c.GlobalOutput || !c.EnumSyntax
}
