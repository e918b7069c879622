package gen

// merger resolves the interfaces an object type implements and tracks
// which of the object's own fields are already contributed by one of
// them.
type merger struct {
	// interfaces holds the resolved interface nodes in the order the
	// object declares them, which is also extends-clause order.
	interfaces []*Node

	// inherited counts field-name contributions across all implemented
	// interfaces; a multiset, since several interfaces may declare the
	// same field.
	inherited map[string]int
}

// newMerger looks up each implemented interface of n in the graph.
// A name that resolves to nothing, or to a node that is not an
// interface, is a dangling reference and aborts the run.
func newMerger(g *Graph, n *Node) (*merger, error) {
	m := &merger{inherited: make(map[string]int)}
	for _, name := range n.Interfaces {
		iface := g.Lookup(name)
		if iface == nil || iface.Kind != KindInterface {
			return nil, NewDanglingInterfaceError(n.Name, name)
		}
		m.interfaces = append(m.interfaces, iface)
		for _, f := range iface.Fields {
			m.inherited[f.Name]++
		}
	}
	return m, nil
}

// isInherited reports whether a supertype already guarantees the field.
func (m *merger) isInherited(fieldName string) bool {
	return m.inherited[fieldName] > 0
}

// extendNames returns the declared names of the implemented interfaces
// in extends-clause order.
func (m *merger) extendNames(c *Config) []string {
	names := make([]string, len(m.interfaces))
	for i, iface := range m.interfaces {
		names[i] = c.typeName(iface.Name)
	}
	return names
}
