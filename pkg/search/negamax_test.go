package search_test

import (
	"context"
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, f string) *board.Board {
	t.Helper()

	pos, turn, noprogress, fullmoves, err := fen.Decode(f)
	require.NoError(t, err)

	zt := board.NewZobristTable(0)
	return board.NewBoard(zt, pos, turn, noprogress, fullmoves)
}

func TestIterativeDeepenCorrectness(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		fen      string
		depth    int
		wantMate bool
	}{
		{fen.Initial, 3, false},
		// Two-rook ladder mate: White forces mate well within the given depth.
		{"k7/7R/6R1/8/8/8/8/7K w - - 0 1", 3, true},
		{"k7/7R/7R/8/8/8/8/7K w - - 0 1", 4, true},
	}

	for _, tt := range tests {
		b := newTestBoard(t, tt.fen)
		st := search.NewState(eval.Material{}, search.NewTable(1))

		move, pv := search.IterativeDeepen(ctx, b, st, tt.depth, nil)
		assert.False(t, move.IsZero(), "expected a move for %v", tt.fen)

		plies, ok := search.MateIn(pv.Score)
		assert.Equalf(t, tt.wantMate, ok, "mate detection mismatch for %v: score=%v", tt.fen, pv.Score)
		if tt.wantMate {
			assert.LessOrEqual(t, plies, tt.depth)
		}
	}
}

func TestIterativeDeepenRespectsDepthLimit(t *testing.T) {
	ctx := context.Background()

	b := newTestBoard(t, fen.Initial)
	st := search.NewState(eval.Material{}, search.NewTable(1))

	_, pv := search.IterativeDeepen(ctx, b, st, 2, nil)
	assert.Equal(t, 2, pv.Depth)
}

func TestIterativeDeepenStreamsPV(t *testing.T) {
	ctx := context.Background()

	b := newTestBoard(t, fen.Initial)
	st := search.NewState(eval.Material{}, search.NewTable(1))

	out := make(chan search.PV, 1)
	_, last := search.IterativeDeepen(ctx, b, st, 3, out)
	close(out)

	var seenFinal bool
	for pv := range out {
		if pv.Depth == last.Depth {
			seenFinal = true
		}
	}
	assert.True(t, seenFinal)
}
