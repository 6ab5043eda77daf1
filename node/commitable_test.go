package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRequirementCommitLifecycle mirrors the literal scenario: build a
// requirement, commit it, observe that further direct mutation fails,
// spawn a change node, discard it, spawn another, commit that one, and
// observe that discarding again now fails because the child is itself
// committed.
func TestRequirementCommitLifecycle(t *testing.T) {
	r := NewRequirement()
	r.Init()
	require.NoError(t, r.SetTitle("t"))
	require.NoError(t, r.SetText("x"))

	r.Commit()

	err := r.SetTitle("u")
	assert.ErrorIs(t, err, ErrNotChanged)

	change := r.GetChangeNode()
	require.NotNil(t, change)
	assert.False(t, change.Committed)
	assert.Equal(t, r.title, change.title)

	require.NoError(t, r.DiscardChange())

	change2 := r.GetChangeNode()
	require.NotNil(t, change2)
	change2.Commit()

	err = r.DiscardChange()
	assert.ErrorIs(t, err, ErrNotDiscarded)
}

func TestGetChangeNodeReturnsNilBeforeCommit(t *testing.T) {
	r := NewRequirement()
	r.Init()
	assert.Nil(t, r.GetChangeNode())
}

func TestCommitableExtraRefsIncludesChangeChild(t *testing.T) {
	s := NewStory()
	s.Init()
	s.Commit()

	change := s.GetChangeNode()
	require.NotNil(t, change)

	refs := s.ExtraRefs()
	require.Len(t, refs, 1)
	assert.Equal(t, change.ID(), refs[0].ID())
}
