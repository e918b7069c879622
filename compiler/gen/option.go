package gen

import "maps"

// Option configures code generation.
type Option func(*Config) error

// WithTypePrefix sets the prefix prepended to every generated type name.
func WithTypePrefix(prefix string) Option {
	return func(c *Config) error {
		c.TypePrefix = prefix
		return nil
	}
}

// WithContextType sets the resolver context type.
func WithContextType(t string) Option {
	return func(c *Config) error {
		if t == "" {
			return NewConfigError("ContextType", t, "context type cannot be empty")
		}
		c.ContextType = t
		return nil
	}
}

// WithCustomScalar maps a custom scalar name to a TypeScript type
// expression, overriding the default fallback.
func WithCustomScalar(name, ts string) Option {
	return func(c *Config) error {
		if name == "" || ts == "" {
			return NewConfigError("CustomScalar", name+"="+ts, "both scalar name and type are required")
		}
		c.Scalars[name] = ts
		return nil
	}
}

// WithCustomScalars merges a full scalar override mapping.
func WithCustomScalars(m map[string]string) Option {
	return func(c *Config) error {
		for name, ts := range m {
			if name == "" || ts == "" {
				return NewConfigError("CustomScalars", name+"="+ts, "both scalar name and type are required")
			}
		}
		maps.Copy(c.Scalars, m)
		return nil
	}
}

// WithMergeInherited enables suppression of fields already contributed
// by an implemented interface.
func WithMergeInherited(merge bool) Option {
	return func(c *Config) error {
		c.MergeInherited = merge
		return nil
	}
}

// WithGlobalOutput emits global-scope declarations.
func WithGlobalOutput(global bool) Option {
	return func(c *Config) error {
		c.GlobalOutput = global
		return nil
	}
}

// WithEnumSyntax selects first-class enum rendering. Pass false for
// environments that cannot consume the TypeScript enum construct.
func WithEnumSyntax(enabled bool) Option {
	return func(c *Config) error {
		c.EnumSyntax = enabled
		return nil
	}
}

// WithHeader sets the file header comment. The header is added at the
// top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}
