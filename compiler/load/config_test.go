package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gqlts/gqlts/compiler/gen"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gqlts.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfigFile(t *testing.T) {
	path := writeConfig(t, `
schema:
  - schema.graphql
  - extensions.graphql
output: src/generated/schema.d.ts
resolver-output: src/generated/resolvers.d.ts
prefix: G
context-type: AppContext
scalars:
  DateTime: string
  JSON: Record<string, unknown>
merge-inherited: true
legacy-enums: true
`)
	cfg, err := ConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, StringList{"schema.graphql", "extensions.graphql"}, cfg.Schema)
	assert.Equal(t, "src/generated/schema.d.ts", cfg.Output)
	assert.Equal(t, "src/generated/resolvers.d.ts", cfg.ResolverOutput)
	assert.Equal(t, "G", cfg.Prefix)
	assert.Equal(t, "AppContext", cfg.ContextType)
	assert.Equal(t, "string", cfg.Scalars["DateTime"])
	assert.True(t, cfg.MergeInherited)
	assert.True(t, cfg.LegacyEnums)
	assert.False(t, cfg.Global)
}

func TestConfigFileScalarSchemaValue(t *testing.T) {
	path := writeConfig(t, "schema: schema.graphql\n")
	cfg, err := ConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, StringList{"schema.graphql"}, cfg.Schema)
}

func TestConfigFileUnknownKeysIgnored(t *testing.T) {
	path := writeConfig(t, "output: out.d.ts\nfuture-option: whatever\n")
	cfg, err := ConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "out.d.ts", cfg.Output)
}

func TestConfigFileMissing(t *testing.T) {
	_, err := ConfigFile(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestStringListRejectsMappings(t *testing.T) {
	var s StringList
	err := yaml.Unmarshal([]byte("schema: 1\n"), &s)
	assert.Error(t, err)
}

func TestConfigOptions(t *testing.T) {
	cfg := &Config{
		Prefix:      "G",
		ContextType: "AppContext",
		Scalars:     map[string]string{"DateTime": "string"},
		LegacyEnums: true,
	}
	genCfg, err := gen.NewConfig(cfg.Options()...)
	require.NoError(t, err)
	assert.Equal(t, "G", genCfg.TypePrefix)
	assert.Equal(t, "AppContext", genCfg.ContextType)
	assert.Equal(t, "string", genCfg.Scalars["DateTime"])
	assert.False(t, genCfg.EnumSyntax)

	// Empty optional values must not reach the generator's validators.
	genCfg, err = gen.NewConfig((&Config{}).Options()...)
	require.NoError(t, err)
	assert.Equal(t, gen.DefaultContextType, genCfg.ContextType)
}
