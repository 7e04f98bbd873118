package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 31, 15, 4, 5, 0, time.Local)

func TestRangeRequest_ResolveDefaults(t *testing.T) {
	r, err := RangeRequest{}.Resolve(now)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-02", r.From)
	assert.Equal(t, "2025-03-31", r.To)
	assert.Equal(t, DefaultTopBooks, r.Limit)
}

func TestRangeRequest_ResolveExplicit(t *testing.T) {
	r, err := RangeRequest{From: "2025-01-01", To: "2025-01-31", Limit: 5}.Resolve(now)
	require.NoError(t, err)
	assert.Equal(t, RangeRequest{From: "2025-01-01", To: "2025-01-31", Limit: 5}, r)
}

func TestRangeRequest_ResolveCapsLongRanges(t *testing.T) {
	r, err := RangeRequest{From: "2020-01-01", To: "2025-03-31"}.Resolve(now)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-31", r.From)
	assert.Equal(t, "2025-03-31", r.To)
}

func TestRangeRequest_ResolveRejects(t *testing.T) {
	_, err := RangeRequest{From: "2025-02-01", To: "2025-01-01"}.Resolve(now)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = RangeRequest{From: "01/02/2025"}.Resolve(now)
	assert.Error(t, err)

	_, err = RangeRequest{Limit: MaxTopBooks + 1}.Resolve(now)
	assert.Error(t, err)
}
