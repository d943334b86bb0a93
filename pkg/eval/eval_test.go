package eval_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialEvaluateSymmetric(t *testing.T) {
	pos, turn, noprogress, fullmoves, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	zt := board.NewZobristTable(0)
	b := board.NewBoard(zt, pos, turn, noprogress, fullmoves)

	var e eval.Material
	assert.Equal(t, board.Centipawns(0), e.Evaluate(b), "symmetric starting position should be dead equal")
}

func TestMaterialEvaluateFavorsExtraQueen(t *testing.T) {
	// White has an extra queen: a decisive material edge for the side to move.
	pos, turn, noprogress, fullmoves, err := fen.Decode("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	require.NoError(t, err)

	zt := board.NewZobristTable(0)
	b := board.NewBoard(zt, pos, turn, noprogress, fullmoves)

	var e eval.Material
	assert.Greater(t, e.Evaluate(b), board.Centipawns(800))
}

func TestNominalValue(t *testing.T) {
	assert.Equal(t, board.Centipawns(100), eval.NominalValue(board.Pawn))
	assert.Equal(t, board.Centipawns(900), eval.NominalValue(board.Queen))
	assert.Greater(t, eval.NominalValue(board.King), board.Centipawns(5000))
}

func TestRandomizeZeroIsNoop(t *testing.T) {
	base := eval.Material{}
	assert.Equal(t, eval.Evaluator(base), eval.Randomize(base, 0, 1))
}
