package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerger(t *testing.T) {
	node := &Node{Kind: KindInterface, Name: "Node", Fields: []*Field{
		{Name: "id", Type: NonNull(Named(KindScalar, "ID"))},
	}}
	timestamped := &Node{Kind: KindInterface, Name: "Timestamped", Fields: []*Field{
		{Name: "id", Type: NonNull(Named(KindScalar, "ID"))},
		{Name: "createdAt", Type: Named(KindScalar, "String")},
	}}
	user := &Node{Kind: KindObject, Name: "User", Interfaces: []string{"Timestamped", "Node"}}
	g := NewGraph([]*Node{node, timestamped, user})

	m, err := newMerger(g, user)
	require.NoError(t, err)
	assert.True(t, m.isInherited("id"))
	assert.True(t, m.isInherited("createdAt"))
	assert.False(t, m.isInherited("name"))
	// "id" is contributed by both interfaces.
	assert.Equal(t, 2, m.inherited["id"])

	// Extends order follows the object's declaration, not graph order.
	cfg, err := NewConfig(WithTypePrefix("G"))
	require.NoError(t, err)
	assert.Equal(t, []string{"GTimestamped", "GNode"}, m.extendNames(cfg))
}

func TestMergerDanglingInterface(t *testing.T) {
	user := &Node{Kind: KindObject, Name: "User", Interfaces: []string{"Missing"}}
	g := NewGraph([]*Node{user})
	_, err := newMerger(g, user)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDanglingInterface))
	assert.EqualError(t, err, `gqlts: type "User" implements undeclared interface "Missing"`)
}

func TestMergerInterfaceNameResolvesToNonInterface(t *testing.T) {
	other := &Node{Kind: KindObject, Name: "Other"}
	user := &Node{Kind: KindObject, Name: "User", Interfaces: []string{"Other"}}
	g := NewGraph([]*Node{other, user})
	_, err := newMerger(g, user)
	assert.True(t, errors.Is(err, ErrDanglingInterface))
}
