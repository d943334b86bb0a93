package search

import (
	"context"

	"github.com/corvidchess/corvid/pkg/board"
)

// Quiescence extends the search at Negamax's horizon with capture-only moves, to avoid
// evaluating positions in the middle of a tactical exchange. The absence of captures is not
// itself terminal: a side that has run out of captures simply falls through to the standing-pat
// evaluation, since it may still be mid-combination with quiet replies pending at a shallower
// ply. Checkmate/stalemate among capture-only moves is not specially detected here: it is caught
// by the enclosing full-width search.
func Quiescence(ctx context.Context, b *board.Board, st *State, alpha, beta board.Score) board.Score {
	st.Nodes++

	if checkTimeout(st) {
		return TimeoutSentinel
	}
	if b.IsRepeated() || b.IsFiftyMoveDraw() || b.IsInsufficientMaterial() {
		return 0
	}

	hash := b.Hash()
	var hint board.Move
	if entry, ok := st.TT.Probe(hash); ok {
		hint = entry.Best
	}

	standPat := st.Eval.Evaluate(b)
	inCheck := b.IsChecked()
	if !inCheck && standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := OrderMoves(b.LegalMoves(board.CapturesOnly, hint), hint, board.CapturesOnly)

	origAlpha := alpha
	var best board.Move
	for _, m := range moves {
		if !inCheck && !m.Equals(hint) {
			if standPat+captureValue(m)+FutilityMargin < alpha {
				continue // delta-pruned: even winning the capture outright can't raise alpha
			}
		}

		b.PushMove(m)
		score := -Quiescence(ctx, b, st, -beta, -alpha)
		b.PopMove()

		if st.StopFlag.Load() {
			return TimeoutSentinel
		}

		if score > alpha {
			alpha = score
			best = m
			if alpha >= beta {
				break
			}
		}
	}

	bound := Upper
	switch {
	case alpha >= beta:
		bound = Lower
	case alpha > origAlpha:
		bound = Exact
	}
	st.TT.Store(hash, alpha, 0, bound, best)

	return alpha
}

func captureValue(m board.Move) board.Score {
	switch m.Capture {
	case board.Pawn:
		return 100
	case board.Knight, board.Bishop:
		return 300
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	default:
		return 0
	}
}
