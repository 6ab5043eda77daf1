package graphjson

import (
	"testing"

	"github.com/stretchr/testify/require"

	"reqgraph.dev/node"
)

func TestMarshalUnmarshalRoundTripsScalarsAndLinks(t *testing.T) {
	org := node.NewOrganization()
	org.Init()
	org.SetName("GCSE,Inc")
	org.SetLocked(true)

	proj := node.NewProject()
	proj.Init()
	proj.SetName("Graph Store")
	node.Connect(org, proj)

	data, err := Marshal(org)
	require.NoError(t, err)

	root, err := Unmarshal(data)
	require.NoError(t, err)

	got, ok := root.(*node.Organization)
	require.True(t, ok)
	require.Equal(t, "GCSE,Inc", got.Name())
	require.True(t, got.Locked())
	require.Len(t, got.Down(), 1)

	child, ok := got.Down()[0].(*node.Project)
	require.True(t, ok)
	require.Equal(t, "Graph Store", child.Name())
}

func TestMarshalUnmarshalRoundTripsCommitableOverlay(t *testing.T) {
	req := node.NewRequirement()
	req.Init()
	require.NoError(t, req.SetTitle("t"))
	require.NoError(t, req.SetText("x"))
	req.Commit()
	changeChild := req.GetChangeNode()
	require.NoError(t, changeChild.SetTitle("t2"))

	data, err := Marshal(req)
	require.NoError(t, err)

	root, err := Unmarshal(data)
	require.NoError(t, err)

	got, ok := root.(*node.Requirement)
	require.True(t, ok)
	require.True(t, got.IsCommitted())
	require.NotNil(t, got.ChangeChild)

	gotChild, ok := got.ChangeChild.(*node.Requirement)
	require.True(t, ok)
	require.Equal(t, "t2", gotChild.Title())
	require.Same(t, got, gotChild.ChangeParent)
}

func TestMarshalUnmarshalRoundTripsAddressLines(t *testing.T) {
	addr := node.NewUSAddress()
	addr.Init()
	addr.SetCity("Springfield")
	lines := node.NewText()
	lines.Init()
	lines.SetText("742 Evergreen Terrace")
	addr.SetAddressLines(lines)

	data, err := Marshal(addr)
	require.NoError(t, err)

	root, err := Unmarshal(data)
	require.NoError(t, err)

	got, ok := root.(*node.USAddress)
	require.True(t, ok)
	require.Equal(t, "Springfield", got.City())
	require.NotNil(t, got.AddressLines())
	require.Equal(t, "742 Evergreen Terrace", got.AddressLines().Text())
}

func TestUnmarshalUnknownKindFallsBackToPlainNode(t *testing.T) {
	data := []byte(`{"roots":["018f3b3b-0000-7000-8000-000000000001"],"nodes":{"018f3b3b-0000-7000-8000-000000000001":{"SomeFutureKind":{}}}}`)

	root, err := Unmarshal(data)
	require.NoError(t, err)
	_, ok := root.(*node.PlainNode)
	require.True(t, ok)
}
