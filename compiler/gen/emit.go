package gen

import "strings"

// emitter renders plain type declarations for every node in the graph:
// scalar aliases, enums, input objects, object/interface shapes, and
// union helpers. It performs no I/O; output is an in-memory line list.
type emitter struct {
	cfg   *Config
	graph *Graph
}

// emitNode returns the declaration block for a single node.
func (e *emitter) emitNode(n *Node) ([]string, error) {
	switch n.Kind {
	case KindScalar:
		return e.emitScalar(n), nil
	case KindEnum:
		return e.emitEnum(n), nil
	case KindInputObject:
		return e.emitInputObject(n)
	case KindObject:
		return e.emitObject(n)
	case KindInterface:
		return e.emitInterface(n)
	case KindUnion:
		return e.emitUnion(n), nil
	default:
		return nil, NewUnknownKindError(n.Name, n.Kind)
	}
}

// emitScalar renders a custom scalar as an alias of its override or the
// permissive fallback. Built-in scalars and self-referential aliases
// produce nothing.
func (e *emitter) emitScalar(n *Node) []string {
	if _, ok := BuiltinScalar(n.Name); ok {
		return nil
	}
	alias := e.cfg.typeName(n.Name)
	underlying := e.cfg.scalarUnderlying(n.Name)
	if alias == underlying {
		return nil
	}
	lines := docBlock("", n.Description, false, "")
	return append(lines, e.cfg.exportPrefix()+"type "+alias+" = "+underlying+";")
}

// emitEnum renders a first-class enum whose member literals equal their
// own names, or a string-literal union when the enum construct is
// unavailable. Declared value order is preserved.
func (e *emitter) emitEnum(n *Node) []string {
	lines := docBlock("", n.Description, false, "")
	name := e.cfg.typeName(n.Name)
	if e.cfg.literalEnums() {
		members := make([]string, len(n.EnumValues))
		for i, v := range n.EnumValues {
			members[i] = "'" + v.Name + "'"
		}
		decl := e.cfg.exportPrefix() + "type " + name + " = " + strings.Join(members, " | ") + ";"
		return appendWrapped(lines, decl)
	}
	lines = append(lines, e.cfg.exportPrefix()+"enum "+name+" {")
	for i, v := range n.EnumValues {
		if v.Description != "" || v.Deprecated {
			lines = append(lines, "")
			lines = append(lines, docBlock("  ", v.Description, v.Deprecated, v.DeprecationReason)...)
		}
		sep := ","
		if i == len(n.EnumValues)-1 {
			sep = ""
		}
		lines = append(lines, "  "+v.Name+" = '"+v.Name+"'"+sep)
	}
	return append(lines, "}")
}

// emitInputObject renders a structural interface over the input fields.
func (e *emitter) emitInputObject(n *Node) ([]string, error) {
	lines := docBlock("", n.Description, false, "")
	lines = append(lines, e.cfg.exportPrefix()+"interface "+e.cfg.typeName(n.Name)+" {")
	for _, f := range n.InputFields {
		fl, err := e.fieldLines(n.Name, f.Name, f.Type, f.Description, false, "")
		if err != nil {
			return nil, err
		}
		lines = append(lines, fl...)
	}
	return append(lines, "}"), nil
}

// emitObject renders a structural interface, extending the implemented
// interfaces in the order the object declares them. When inherited-field
// merging is on, fields already guaranteed by a supertype are dropped;
// otherwise every field is re-declared, which is harmless structurally.
func (e *emitter) emitObject(n *Node) ([]string, error) {
	m, err := newMerger(e.graph, n)
	if err != nil {
		return nil, err
	}
	head := e.cfg.exportPrefix() + "interface " + e.cfg.typeName(n.Name)
	if len(m.interfaces) > 0 {
		head += " extends " + strings.Join(m.extendNames(e.cfg), ", ")
	}
	lines := docBlock("", n.Description, false, "")
	lines = append(lines, head+" {")
	for _, f := range n.Fields {
		if e.cfg.MergeInherited && m.isInherited(f.Name) {
			continue
		}
		fl, err := e.fieldLines(n.Name, f.Name, f.Type, f.Description, f.Deprecated, f.DeprecationReason)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fl...)
	}
	return append(lines, "}"), nil
}

// emitInterface renders the interface shape plus the same possible-type
// helpers a union gets.
func (e *emitter) emitInterface(n *Node) ([]string, error) {
	lines := docBlock("", n.Description, false, "")
	lines = append(lines, e.cfg.exportPrefix()+"interface "+e.cfg.typeName(n.Name)+" {")
	for _, f := range n.Fields {
		fl, err := e.fieldLines(n.Name, f.Name, f.Type, f.Description, f.Deprecated, f.DeprecationReason)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fl...)
	}
	lines = append(lines, "}")
	lines = append(lines, "")
	lines = append(lines, e.possibleTypeHelpers(n, "interface")...)
	return lines, nil
}

// emitUnion renders the union alias over its member types plus the
// possible-type-name helpers.
func (e *emitter) emitUnion(n *Node) []string {
	members := make([]string, len(n.PossibleTypes))
	for i, name := range n.PossibleTypes {
		members[i] = e.memberExpr(name)
	}
	lines := docBlock("", n.Description, false, "")
	decl := e.cfg.exportPrefix() + "type " + e.cfg.typeName(n.Name) + " = " + strings.Join(members, " | ") + ";"
	lines = appendWrapped(lines, decl)
	lines = append(lines, "")
	lines = append(lines, e.possibleTypeHelpers(n, "union")...)
	return lines
}

// possibleTypeHelpers renders the two discrimination helpers shared by
// unions and interfaces: a string-literal union of the concrete type
// names, and a map interface from each name (the owner's included) to
// its declared type.
func (e *emitter) possibleTypeHelpers(n *Node, kindWord string) []string {
	names := make([]string, len(n.PossibleTypes))
	for i, name := range n.PossibleTypes {
		names[i] = "'" + name + "'"
	}
	var lines []string
	lines = append(lines, "/** All possible concrete types of the "+e.cfg.typeName(n.Name)+" "+kindWord+". */")
	alias := e.cfg.exportPrefix() + "type " + e.cfg.possibleNamesAlias(n.Name) + " = " + strings.Join(names, " | ") + ";"
	lines = appendWrapped(lines, alias)
	lines = append(lines, "")
	lines = append(lines, "/** Maps each concrete type name of the "+e.cfg.typeName(n.Name)+" "+kindWord+" to its declared type. */")
	lines = append(lines, e.cfg.exportPrefix()+"interface "+e.cfg.nameMapName(n.Name)+" {")
	lines = append(lines, "  "+n.Name+": "+e.cfg.typeName(n.Name)+";")
	for _, name := range n.PossibleTypes {
		lines = append(lines, "  "+name+": "+e.memberExpr(name)+";")
	}
	return append(lines, "}")
}

// memberExpr resolves a possible-type member name: primitive members go
// through the scalar mapping, everything else is the prefixed name.
func (e *emitter) memberExpr(name string) string {
	if node := e.graph.Lookup(name); node != nil {
		if node.Kind == KindScalar {
			return e.cfg.resolveScalar(name)
		}
		return e.cfg.typeName(name)
	}
	if _, ok := BuiltinScalar(name); ok {
		return e.cfg.resolveScalar(name)
	}
	return e.cfg.typeName(name)
}

// fieldLines renders one structural field with its documentation block.
// A blank separator line precedes any documented field.
func (e *emitter) fieldLines(owner, name string, ref *TypeRef, desc string, deprecated bool, reason string) ([]string, error) {
	spec, err := decompose(ref, owner, name)
	if err != nil {
		return nil, err
	}
	decl, err := renderFieldDeclaration(name, spec.mods, e.cfg.leafExpr(spec.leaf), owner)
	if err != nil {
		return nil, err
	}
	var lines []string
	if desc != "" || deprecated {
		lines = append(lines, "")
		lines = append(lines, docBlock("  ", desc, deprecated, reason)...)
	}
	return append(lines, "  "+decl), nil
}

// docBlock formats a description (and deprecation notice) as a JSDoc
// comment at the given indent. Empty input yields no lines.
func docBlock(indent, desc string, deprecated bool, reason string) []string {
	var body []string
	if desc != "" {
		body = append(body, strings.Split(strings.TrimRight(desc, "\n"), "\n")...)
	}
	if deprecated {
		note := "@deprecated"
		if reason != "" {
			note += " " + reason
		}
		body = append(body, note)
	}
	if len(body) == 0 {
		return nil
	}
	if len(body) == 1 {
		return []string{indent + "/** " + body[0] + " */"}
	}
	lines := []string{indent + "/**"}
	for _, l := range body {
		lines = append(lines, strings.TrimRight(indent+" * "+l, " "))
	}
	return append(lines, indent+" */")
}

// appendWrapped appends a candidate declaration line, re-flowed through
// the width formatter when it exceeds the column budget.
func appendWrapped(lines []string, decl string) []string {
	return append(lines, strings.Split(WrapUnion(decl), "\n")...)
}
