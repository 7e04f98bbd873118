package model

import (
	"bytes"
	"errors"
	"sort"

	"github.com/google/uuid"
)

var ErrLoginRequired = errors.New("login required to manage favorites")

// IDs is the sorted, duplicate-free favorite set of a user
type IDs []uuid.UUID

// NewIDs normalizes ids
func NewIDs(ids []uuid.UUID) IDs {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make(IDs, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i][:], out[j][:]) < 0
	})
	return out
}

func (s IDs) Contains(id uuid.UUID) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Toggled returns a copy with id added or removed
func (s IDs) Toggled(id uuid.UUID) IDs {
	if s.Contains(id) {
		out := make([]uuid.UUID, 0, len(s))
		for _, v := range s {
			if v != id {
				out = append(out, v)
			}
		}
		return NewIDs(out)
	}
	return NewIDs(append(append([]uuid.UUID{}, s...), id))
}

// ToggleResult is the favorite state after a toggle settled
type ToggleResult struct {
	BookID    uuid.UUID `json:"bookId"`
	Favorited bool      `json:"favorited"`
	IDs       IDs       `json:"ids"`
	Reverted  bool      `json:"reverted"`
	Message   string    `json:"message,omitempty"`
}
