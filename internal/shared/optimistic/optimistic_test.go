package optimistic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_Confirms(t *testing.T) {
	var shown []int
	got, err := Run(context.Background(), Update[int]{
		Snapshot:  1,
		Tentative: 2,
		Apply: func(_ context.Context, v int) error {
			shown = append(shown, v)
			return nil
		},
		Commit: func(context.Context) (int, error) { return 3, nil },
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.Equal(t, []int{2, 3}, shown)
}

func TestRun_RevertsOnFailure(t *testing.T) {
	var shown []int
	boom := errors.New("boom")
	ctx, cancel := context.WithCancel(context.Background())

	got, err := Run(ctx, Update[int]{
		Snapshot:  1,
		Tentative: 2,
		Apply: func(ctx context.Context, v int) error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			shown = append(shown, v)
			return nil
		},
		Commit: func(context.Context) (int, error) {
			cancel()
			return 0, boom
		},
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, got)
	assert.Equal(t, []int{2, 1}, shown, "revert is applied even after cancellation")
}

func TestRun_NilApply(t *testing.T) {
	got, err := Run(context.Background(), Update[string]{
		Snapshot:  "a",
		Tentative: "b",
		Commit:    func(context.Context) (string, error) { return "b", nil },
	})
	assert.NoError(t, err)
	assert.Equal(t, "b", got)
}
