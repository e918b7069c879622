package gen

import "strings"

// Output holds the two ordered line sequences of one generation run:
// plain type declarations and resolver declarations. Both follow graph
// declaration order and are safe to concatenate.
type Output struct {
	TypeLines     []string
	ResolverLines []string

	header string
}

// Generate runs the full translation: one immutable graph and one
// configuration in, the complete declaration text out. It is a pure
// fold over the graph's node sequence; any failure aborts the run with
// no partial output.
func Generate(g *Graph, cfg *Config) (*Output, error) {
	if cfg == nil {
		var err error
		if cfg, err = NewConfig(); err != nil {
			return nil, err
		}
	}
	em := &emitter{cfg: cfg, graph: g}
	var typeBlocks [][]string
	for _, n := range g.Nodes {
		if n.meta() {
			continue
		}
		block, err := em.emitNode(n)
		if err != nil {
			return nil, err
		}
		if len(block) > 0 {
			typeBlocks = append(typeBlocks, block)
		}
	}
	rb := &resolverBuilder{cfg: cfg, graph: g}
	resolverBlocks, err := rb.build()
	if err != nil {
		return nil, err
	}
	return &Output{
		TypeLines:     join(typeBlocks),
		ResolverLines: join(resolverBlocks),
		header:        cfg.Header,
	}, nil
}

// Render concatenates the header, type declarations, and resolver
// declarations into a single source artifact.
func (o *Output) Render() string {
	var b strings.Builder
	if o.header != "" {
		b.WriteString(o.header)
		b.WriteString("\n\n")
	}
	writeLines(&b, o.TypeLines)
	b.WriteString("\n")
	writeLines(&b, o.ResolverLines)
	return b.String()
}

// RenderSplit renders the type and resolver declarations as two
// separate source artifacts, each carrying the header.
func (o *Output) RenderSplit() (types, resolvers string) {
	return renderFile(o.header, o.TypeLines), renderFile(o.header, o.ResolverLines)
}

func renderFile(header string, lines []string) string {
	var b strings.Builder
	if header != "" {
		b.WriteString(header)
		b.WriteString("\n\n")
	}
	writeLines(&b, lines)
	return b.String()
}

func writeLines(b *strings.Builder, lines []string) {
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
}
