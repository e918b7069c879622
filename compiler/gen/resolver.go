package gen

// resolverBuilder synthesizes, for every field of every object and
// interface type, an arguments type, a generic field-resolver type, and
// the per-type resolver map interface, then aggregates the top-level
// resolver map.
type resolverBuilder struct {
	cfg   *Config
	graph *Graph
}

// build walks the graph in declaration order and returns the resolver
// declaration blocks.
func (b *resolverBuilder) build() ([][]string, error) {
	var blocks [][]string
	rootEntries := []string{}
	for _, n := range b.graph.Nodes {
		if n.meta() {
			continue
		}
		switch n.Kind {
		case KindObject, KindInterface:
			typeBlocks, err := b.typeBlocks(n)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, typeBlocks...)
			if n.Kind == KindObject {
				rootEntries = append(rootEntries, "  "+n.Name+"?: "+b.cfg.resolversName(n.Name)+";")
			} else {
				blocks = append(blocks, b.discriminator(n, "interface"))
				rootEntries = append(rootEntries, "  "+n.Name+"?: { __resolveType: "+b.cfg.resolveTypeName(n.Name)+" };")
			}
		case KindUnion:
			blocks = append(blocks, b.discriminator(n, "union"))
			rootEntries = append(rootEntries, "  "+n.Name+"?: { __resolveType: "+b.cfg.resolveTypeName(n.Name)+" };")
		case KindScalar:
			// Custom scalar handlers are supplied externally and
			// cannot be typed more precisely here.
			if _, builtin := BuiltinScalar(n.Name); !builtin {
				rootEntries = append(rootEntries, "  "+n.Name+"?: any;")
			}
		case KindEnum, KindInputObject:
		default:
			return nil, NewUnknownKindError(n.Name, n.Kind)
		}
	}
	root := []string{
		"/** Maps every schema type to the shape responsible for producing its runtime data. */",
		b.cfg.exportPrefix() + "interface " + b.cfg.rootResolversName() + " {",
	}
	root = append(root, rootEntries...)
	root = append(root, "}")
	return append(blocks, root), nil
}

// typeBlocks renders the arguments types, field-resolver types, and the
// resolver map interface for one object or interface type.
func (b *resolverBuilder) typeBlocks(n *Node) ([][]string, error) {
	var blocks [][]string
	seen := make(map[string]string, len(n.Fields))
	mapEntries := make([]string, 0, len(n.Fields))
	for _, f := range n.Fields {
		symbol := b.cfg.fieldSymbol(n.Name, f.Name)
		if other, ok := seen[symbol]; ok {
			return nil, NewNamingCollisionError(n.Name, f.Name, other, symbol)
		}
		seen[symbol] = f.Name

		argsExpr := "{}"
		if len(f.Args) > 0 {
			argsExpr = b.cfg.argsSymbol(n.Name, f.Name)
			argsBlock, err := b.argsType(n, f, argsExpr)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, argsBlock)
		}

		fieldBlock, err := b.fieldResolver(n, f, symbol, argsExpr)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, fieldBlock)
		mapEntries = append(mapEntries, "  "+f.Name+"?: "+symbol+";")
	}
	mapBlock := []string{b.cfg.exportPrefix() + "interface " + b.cfg.resolversName(n.Name) + " {"}
	mapBlock = append(mapBlock, mapEntries...)
	mapBlock = append(mapBlock, "}")
	return append(blocks, mapBlock), nil
}

// argsType renders the synthesized arguments interface for a field that
// declares at least one argument.
func (b *resolverBuilder) argsType(n *Node, f *Field, name string) ([]string, error) {
	lines := []string{b.cfg.exportPrefix() + "interface " + name + " {"}
	for _, a := range f.Args {
		spec, err := decompose(a.Type, n.Name, f.Name+"("+a.Name+")")
		if err != nil {
			return nil, err
		}
		decl, err := renderFieldDeclaration(a.Name, spec.mods, b.cfg.leafExpr(spec.leaf), n.Name)
		if err != nil {
			return nil, err
		}
		if a.Description != "" {
			lines = append(lines, "")
			lines = append(lines, docBlock("  ", a.Description, false, "")...)
		}
		lines = append(lines, "  "+decl)
	}
	return append(lines, "}"), nil
}

// fieldResolver renders the generic field-resolver type: a field may be
// satisfied either by a static or awaited value, or by an explicit
// resolution function over (parent, args, context, info).
func (b *resolverBuilder) fieldResolver(n *Node, f *Field, symbol, argsExpr string) ([]string, error) {
	spec, err := decompose(f.Type, n.Name, f.Name)
	if err != nil {
		return nil, err
	}
	ret, err := renderType(spec.mods, b.cfg.leafExpr(spec.leaf), n.Name, f.Name)
	if err != nil {
		return nil, err
	}
	parent := b.cfg.typeName(n.Name)
	fn := "((parent: TParent, args: " + argsExpr + ", context: " + b.cfg.ContextType +
		", info: any) => " + ret + " | Promise<" + ret + ">)"
	decl := b.cfg.exportPrefix() + "type " + symbol + "<TParent = " + parent + "> = " +
		ret + " | Promise<" + ret + "> | " + fn + ";"
	var lines []string
	if f.Description != "" || f.Deprecated {
		lines = docBlock("", f.Description, f.Deprecated, f.DeprecationReason)
	}
	return appendWrapped(lines, decl), nil
}

// discriminator renders the __resolveType function type for an
// interface or union: given a polymorphic value, it names the concrete
// type at runtime.
func (b *resolverBuilder) discriminator(n *Node, kindWord string) []string {
	lines := []string{"/** Determines the concrete type of a " + b.cfg.typeName(n.Name) + " " + kindWord + " value at runtime. */"}
	decl := b.cfg.exportPrefix() + "type " + b.cfg.resolveTypeName(n.Name) +
		" = (parent: any, context: " + b.cfg.ContextType + ", info: any) => " +
		b.cfg.possibleNamesAlias(n.Name) + ";"
	return appendWrapped(lines, decl)
}

// join flattens declaration blocks into one line list with blank lines
// between blocks.
func join(blocks [][]string) []string {
	var lines []string
	for _, block := range blocks {
		if len(block) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, block...)
	}
	return lines
}
