package search

import (
	"context"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"go.uber.org/atomic"
)

const (
	// MateScore is the score magnitude assigned to a checkmate at the root; each ply between the
	// root and the mate lowers the magnitude by one, so scores closer to it indicate a shorter mate.
	MateScore = board.Score(50000)
	// TimeoutSentinel is returned by Negamax/Quiescence when a search is aborted mid-tree. It is
	// never a legitimate evaluation and must not be stored in the transposition table or used as
	// a committed score.
	TimeoutSentinel = board.Score(77777)
	// FutilityMargin is the safety margin added to captured material when delta-pruning
	// quiescence moves.
	FutilityMargin = board.Score(200)
)

// Evaluator is the static position evaluation contract the search depends on at leaf nodes.
type Evaluator interface {
	Evaluate(b *board.Board) board.Score
}

// State carries the mutable state threaded through one Negamax/Quiescence search tree. TT and
// StopFlag are the only fields shared with the driver goroutine; everything else belongs to
// exactly one search and is safe to mutate without synchronization.
type State struct {
	Eval Evaluator
	TT   *Table

	StopFlag *atomic.Bool

	Start        time.Time
	MoveTimeMS   uint32
	StrictTiming bool

	RootDepth    int
	RootBestMove board.Move
	Nodes        uint64
}

// NewState returns a State ready for IterativeDeepen. Callers still need to set MoveTimeMS and
// StrictTiming before launching the search.
func NewState(e Evaluator, tt *Table) *State {
	return &State{Eval: e, TT: tt, StopFlag: atomic.NewBool(false)}
}

func elapsedMS(st *State) uint32 {
	return uint32(time.Since(st.Start) / time.Millisecond)
}

// checkTimeout is the suspension point called at every Negamax/Quiescence entry: it propagates
// an externally-set stop flag immediately, and under strict timing additionally sets the stop
// flag once the move time budget has elapsed.
func checkTimeout(st *State) bool {
	if st.StopFlag.Load() {
		return true
	}
	if st.StrictTiming && elapsedMS(st) > st.MoveTimeMS {
		st.StopFlag.Store(true)
		return true
	}
	return false
}

// Negamax searches b to the given depth using alpha-beta pruning, transposition-table-guided
// move ordering, and a quiescence horizon extension. root must be true only for the call made
// directly by IterativeDeepen for the current iteration: it disables the draw checks (the root
// position's history already reflects any prior repetition/fifty-move state, which the driver,
// not the search, is responsible for) and the TT probe/cutoff (the root always wants a best
// move, not just a bound).
func Negamax(ctx context.Context, b *board.Board, st *State, depth int, alpha, beta board.Score, root bool) board.Score {
	st.Nodes++

	if checkTimeout(st) {
		return TimeoutSentinel
	}

	if !root && (b.IsRepeated() || b.IsFiftyMoveDraw() || b.IsInsufficientMaterial()) {
		return 0
	}

	hash := b.Hash()
	var hint board.Move
	if !root {
		if entry, ok := st.TT.Probe(hash); ok {
			hint = entry.Best
			if int(entry.Depth) >= depth {
				switch entry.Bound {
				case Exact:
					return entry.Score
				case Lower:
					if entry.Score >= beta {
						return beta
					}
				case Upper:
					if entry.Score <= alpha {
						return alpha
					}
				}
			}
		}
	}

	if depth <= 0 {
		return Quiescence(ctx, b, st, alpha, beta)
	}

	moves := OrderMoves(b.LegalMoves(board.AllMoves, hint), hint, board.AllMoves)
	if len(moves) == 0 {
		if b.IsChecked() {
			return -MateScore + board.Score(st.RootDepth-depth)
		}
		return 0
	}

	origAlpha := alpha
	var best board.Move
	for _, m := range moves {
		b.PushMove(m)
		score := -Negamax(ctx, b, st, depth-1, -beta, -alpha, false)
		b.PopMove()

		if st.StopFlag.Load() {
			return TimeoutSentinel
		}

		if score > alpha {
			alpha = score
			best = m
			if root {
				st.RootBestMove = m
			}
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
	st.TT.Store(hash, alpha, uint8(depth), bound, best)

	return alpha
}
