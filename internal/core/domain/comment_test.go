package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommentThreads(t *testing.T) {
	parent := uint64(1)
	reply := uint64(2)
	missing := uint64(99)

	threads := BuildCommentThreads([]Comment{
		{ID: 1, Content: "root"},
		{ID: 2, Content: "reply", ParentID: &parent},
		{ID: 3, Content: "nested", ParentID: &reply},
		{ID: 4, Content: "second root"},
		{ID: 5, Content: "orphan", ParentID: &missing},
	})

	require.Len(t, threads, 3)
	assert.Equal(t, uint64(1), threads[0].ID)
	require.Len(t, threads[0].Replies, 1)
	assert.Equal(t, uint64(2), threads[0].Replies[0].ID)
	require.Len(t, threads[0].Replies[0].Replies, 1)
	assert.Equal(t, uint64(3), threads[0].Replies[0].Replies[0].ID)
	assert.Equal(t, uint64(4), threads[1].ID)
	assert.Equal(t, uint64(5), threads[2].ID)
}

func TestBuildCommentThreads_Empty(t *testing.T) {
	assert.Empty(t, BuildCommentThreads(nil))
}

func TestValidColor(t *testing.T) {
	assert.True(t, ValidColor("#007bff"))
	assert.False(t, ValidColor("#fff"))
	assert.False(t, ValidColor("007bff"))
}
