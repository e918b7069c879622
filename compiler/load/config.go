package load

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gqlts/gqlts/compiler/gen"
)

// Config is the gqlts.yml project file. Every field is optional; the
// CLI overlays its flags on top of whatever the file sets.
type Config struct {
	// Schema is the path(s) to the schema definition file(s).
	Schema StringList `yaml:"schema,omitempty"`

	// Endpoint is a live GraphQL endpoint to introspect instead of
	// reading schema files.
	Endpoint string `yaml:"endpoint,omitempty"`

	// Output is the path of the generated declaration file.
	Output string `yaml:"output,omitempty"`

	// ResolverOutput, when set, splits resolver declarations into
	// their own file.
	ResolverOutput string `yaml:"resolver-output,omitempty"`

	// Prefix is prepended to every generated type name.
	Prefix string `yaml:"prefix,omitempty"`

	// ContextType is the resolver context type.
	ContextType string `yaml:"context-type,omitempty"`

	// Scalars maps custom scalar names to TypeScript types.
	Scalars map[string]string `yaml:"scalars,omitempty"`

	// MergeInherited suppresses fields already declared by an
	// implemented interface.
	MergeInherited bool `yaml:"merge-inherited,omitempty"`

	// Global emits global-scope declarations.
	Global bool `yaml:"global,omitempty"`

	// LegacyEnums renders enums as string-literal unions.
	LegacyEnums bool `yaml:"legacy-enums,omitempty"`
}

// ConfigFile reads and decodes a gqlts.yml project file.
func ConfigFile(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(src, cfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return cfg, nil
}

// Options translates the file configuration into generator options.
func (c *Config) Options() []gen.Option {
	opts := []gen.Option{
		gen.WithTypePrefix(c.Prefix),
		gen.WithMergeInherited(c.MergeInherited),
		gen.WithGlobalOutput(c.Global),
		gen.WithEnumSyntax(!c.LegacyEnums),
	}
	if c.ContextType != "" {
		opts = append(opts, gen.WithContextType(c.ContextType))
	}
	if len(c.Scalars) > 0 {
		opts = append(opts, gen.WithCustomScalars(c.Scalars))
	}
	return opts
}

// StringList is a YAML type that can be either a string or a list of
// strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler for StringList.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = []string{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("expected a string or a list of strings, got yaml kind %d", node.Kind)
	}
}
