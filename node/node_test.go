package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAllocatesV7Identifier(t *testing.T) {
	n := NewPlainNode()
	assert.False(t, n.Initialized())

	n.Init()

	assert.True(t, n.Initialized())
	assert.Equal(t, 7, int(n.ID().Version()))
	assert.NotEmpty(t, n.IDString())
}

func TestSetIdentifierMarksInitializedWithoutAllocating(t *testing.T) {
	n := NewPlainNode()
	other := NewPlainNode()
	other.Init()

	require.NoError(t, n.SetIdentifier(other.IDString()))

	assert.True(t, n.Initialized())
	assert.Equal(t, other.ID(), n.ID())
}

func TestSetIdentifierRejectsMalformedInput(t *testing.T) {
	n := NewPlainNode()
	err := n.SetIdentifier("not-a-uuid")
	assert.Error(t, err)
	assert.False(t, n.Initialized())
}

func TestAddUpAddDownIdempotentByIdentifier(t *testing.T) {
	parent := NewOrganization()
	parent.Init()
	child := NewProject()
	child.Init()

	parent.AddDown(child)
	parent.AddDown(child)
	child.AddUp(parent)
	child.AddUp(parent)

	assert.Len(t, parent.Down(), 1)
	assert.Len(t, child.Up(), 1)
}

func TestConnectLinksBothDirections(t *testing.T) {
	parent := NewOrganization()
	parent.Init()
	child := NewProject()
	child.Init()

	Connect(parent, child)

	found, ok := parent.FindDown(child.ID())
	assert.True(t, ok)
	assert.Equal(t, child.ID(), found.ID())

	found, ok = child.FindUp(parent.ID())
	assert.True(t, ok)
	assert.Equal(t, parent.ID(), found.ID())
}

func TestTraverseVisitsEachIdentifierOnceOnACycle(t *testing.T) {
	a := NewOrganization()
	a.Init()
	b := NewProject()
	b.Init()

	Connect(a, b)
	// Manually wire a cycle: b's up already has a from Connect, so add a
	// back into b's down too.
	b.AddDown(a)
	a.AddUp(b)

	var visited []string
	Traverse(a, func(n Node) {
		visited = append(visited, n.IDString())
	})

	assert.Len(t, visited, 2)
	assert.ElementsMatch(t, []string{a.IDString(), b.IDString()}, visited)
}

func TestTraverseOrderIsCurrentThenUpThenDownThenExtras(t *testing.T) {
	root := NewRequirement()
	root.Init()
	up := NewOrganization()
	up.Init()
	down := NewProject()
	down.Init()
	root.AddUp(up)
	root.AddDown(down)
	root.Commit()
	changeChild := root.GetChangeNode()
	require.NotNil(t, changeChild)

	var order []string
	Traverse(root, func(n Node) {
		order = append(order, n.IDString())
	})

	require.Len(t, order, 4)
	assert.Equal(t, root.IDString(), order[0])
	assert.Equal(t, up.IDString(), order[1])
	assert.Equal(t, down.IDString(), order[2])
	assert.Equal(t, changeChild.IDString(), order[3])
}

func TestDirtyFlagDefaultsFalseAndTracksMutation(t *testing.T) {
	org := NewOrganization()
	org.Init()
	assert.False(t, org.Changed())

	org.SetName("GCSE,Inc")
	assert.True(t, org.Changed())

	org.SetChanged(false)
	assert.False(t, org.Changed())
}
