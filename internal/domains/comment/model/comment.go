package model

import (
	"errors"
	"sort"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MaxContentLength = 1000
	// MaxDepth is the deepest reply level (roots are level 0)
	MaxDepth = 3
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidComment  = errors.New("invalid comment id")
)

// Comment is one node of a book's discussion thread
type Comment struct {
	ID        uuid.UUID  `json:"id"`
	BookID    uuid.UUID  `json:"bookId"`
	ParentID  *uuid.UUID `json:"parentId,omitempty"`
	UserID    uuid.UUID  `json:"userId"`
	UserName  string     `json:"userName"`
	Content   string     `json:"content"`
	LikeCount int        `json:"likeCount"`
	LikedByMe bool       `json:"likedByMe"`
	CreatedAt time.Time  `json:"createdAt"`

	Depth   int        `json:"depth"`
	Replies []*Comment `json:"replies"`
}

// Thread is the tree of a book's comments
type Thread struct {
	BookID   uuid.UUID  `json:"bookId"`
	Total    int        `json:"total"`
	Comments []*Comment `json:"comments"`
}

// BuildTree links a flat list through parentId.
// Roots are newest first, replies oldest first. A comment whose parent is
// missing from the list becomes a root.
func BuildTree(flat []Comment) []*Comment {
	nodes := make(map[uuid.UUID]*Comment, len(flat))
	ordered := make([]*Comment, 0, len(flat))
	for i := range flat {
		c := flat[i]
		c.Replies = []*Comment{}
		c.Depth = 0
		if _, dup := nodes[c.ID]; dup {
			continue
		}
		nodes[c.ID] = &c
		ordered = append(ordered, &c)
	}

	roots := make([]*Comment, 0)
	for _, c := range ordered {
		parent := parentOf(c, nodes)
		if parent == nil {
			roots = append(roots, c)
			continue
		}
		parent.Replies = append(parent.Replies, c)
	}

	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].CreatedAt.After(roots[j].CreatedAt)
	})
	for _, r := range roots {
		settle(r, 0)
	}
	return roots
}

// parentOf returns the node c attaches to, nil for a root. Self references
// and cycles are broken by treating c as a root.
func parentOf(c *Comment, nodes map[uuid.UUID]*Comment) *Comment {
	if c.ParentID == nil {
		return nil
	}
	parent, ok := nodes[*c.ParentID]
	if !ok {
		return nil
	}

	seen := map[uuid.UUID]bool{c.ID: true}
	for p := parent; p != nil && p.ParentID != nil; {
		if seen[p.ID] {
			return nil
		}
		seen[p.ID] = true
		p = nodes[*p.ParentID]
	}
	return parent
}

// settle assigns depths. Descendants that would sit below MaxDepth are
// lifted into the reply list of their ancestor one level above it.
func settle(c *Comment, depth int) {
	c.Depth = depth
	if depth+1 >= MaxDepth {
		c.Replies = flatten(c.Replies)
		for _, r := range c.Replies {
			r.Replies = []*Comment{}
			r.Depth = depth + 1
		}
		sortOldestFirst(c.Replies)
		return
	}

	sortOldestFirst(c.Replies)
	for _, r := range c.Replies {
		settle(r, depth+1)
	}
}

func sortOldestFirst(list []*Comment) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
}

func flatten(list []*Comment) []*Comment {
	out := make([]*Comment, 0, len(list))
	for _, c := range list {
		out = append(out, c)
		out = append(out, flatten(c.Replies)...)
	}
	return out
}

// Count returns the number of nodes in the tree
func Count(roots []*Comment) int {
	n := 0
	for _, c := range roots {
		n += 1 + Count(c.Replies)
	}
	return n
}

// CreateCommentRequest - POST /comments
type CreateCommentRequest struct {
	BookID   uuid.UUID  `json:"bookId" binding:"required"`
	ParentID *uuid.UUID `json:"parentId,omitempty"`
	Content  string     `json:"content"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID, validation.By(func(v interface{}) error {
			if id, _ := v.(uuid.UUID); id == uuid.Nil {
				return errors.New("is required")
			}
			return nil
		})),
		validation.Field(&r.Content, validation.Required, validation.RuneLength(1, MaxContentLength)),
	)
}

// LikeState is what the like button shows
type LikeState struct {
	CommentID uuid.UUID `json:"commentId"`
	Liked     bool      `json:"liked"`
	LikeCount int       `json:"likeCount"`
}

// Toggled is the tentative state after a click
func (s LikeState) Toggled() LikeState {
	next := s
	next.Liked = !s.Liked
	if next.Liked {
		next.LikeCount++
	} else if next.LikeCount > 0 {
		next.LikeCount--
	}
	return next
}

// LikeToggleRequest carries the state the page currently shows
type LikeToggleRequest struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

// LikeToggleResult is the state to show after the toggle settled
type LikeToggleResult struct {
	LikeState
	Reverted bool   `json:"reverted"`
	Message  string `json:"message,omitempty"`
}
