package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func node(id, parent uuid.UUID, minutes int) Comment {
	c := Comment{ID: id, CreatedAt: base.Add(time.Duration(minutes) * time.Minute)}
	if parent != uuid.Nil {
		p := parent
		c.ParentID = &p
	}
	return c
}

func TestBuildTree_NestsAndOrders(t *testing.T) {
	rootOld, rootNew := uuid.New(), uuid.New()
	replyLate, replyEarly := uuid.New(), uuid.New()
	nested := uuid.New()

	roots := BuildTree([]Comment{
		node(replyLate, rootOld, 30),
		node(rootOld, uuid.Nil, 0),
		node(nested, replyEarly, 40),
		node(rootNew, uuid.Nil, 60),
		node(replyEarly, rootOld, 10),
	})

	require.Len(t, roots, 2)
	assert.Equal(t, rootNew, roots[0].ID, "roots newest first")
	assert.Equal(t, rootOld, roots[1].ID)

	replies := roots[1].Replies
	require.Len(t, replies, 2)
	assert.Equal(t, replyEarly, replies[0].ID, "replies oldest first")
	assert.Equal(t, 1, replies[0].Depth)
	require.Len(t, replies[0].Replies, 1)
	assert.Equal(t, nested, replies[0].Replies[0].ID)
	assert.Equal(t, 2, replies[0].Replies[0].Depth)

	assert.Equal(t, 5, Count(roots))
	assert.NotNil(t, roots[0].Replies)
}

func TestBuildTree_OrphansAndCycles(t *testing.T) {
	orphan, a, b, self := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	roots := BuildTree([]Comment{
		node(orphan, uuid.New(), 0),
		node(a, b, 1),
		node(b, a, 2),
		node(self, self, 3),
	})

	assert.Len(t, roots, 4)
	assert.Equal(t, 4, Count(roots))
}

func TestBuildTree_LiftsRepliesBelowMaxDepth(t *testing.T) {
	ids := make([]uuid.UUID, MaxDepth+3)
	for i := range ids {
		ids[i] = uuid.New()
	}
	flat := []Comment{node(ids[0], uuid.Nil, 0)}
	for i := 1; i < len(ids); i++ {
		flat = append(flat, node(ids[i], ids[i-1], i))
	}

	roots := BuildTree(flat)
	require.Len(t, roots, 1)

	deepest := 0
	var walk func([]*Comment)
	walk = func(list []*Comment) {
		for _, c := range list {
			if c.Depth > deepest {
				deepest = c.Depth
			}
			walk(c.Replies)
		}
	}
	walk(roots)

	assert.Equal(t, MaxDepth, deepest)
	assert.Equal(t, len(ids), Count(roots))
}

func TestLikeState_Toggled(t *testing.T) {
	s := LikeState{Liked: false, LikeCount: 4}
	assert.Equal(t, LikeState{Liked: true, LikeCount: 5}, s.Toggled())
	assert.Equal(t, LikeState{Liked: false, LikeCount: 0}, LikeState{Liked: true, LikeCount: 0}.Toggled())
}
