package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
)

// PV is the principal variation and statistics reported for one completed search iteration.
type PV struct {
	Depth    int
	Score    board.Score
	Moves    []board.Move
	Nodes    uint64
	Time     time.Duration
	Hashfull uint32
}

func (p PV) String() string {
	parts := make([]string, len(p.Moves))
	for i, m := range p.Moves {
		parts[i] = m.String()
	}
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v hashfull=%v pv=%v", p.Depth, p.Score, p.Nodes, p.Time, p.Hashfull, strings.Join(parts, " "))
}

// IterativeDeepen runs Negamax at depth 1, 2, 3, ... until st.StopFlag is set, the move time
// budget elapses, depthLimit is reached (0 means unlimited), or a forced mate is found within
// the depth just searched, and returns the best move and PV of the last FULLY COMPLETED
// iteration. A partial iteration's alpha-beta window was never resolved to a real bound, so its
// root move and score are discarded rather than reported: this is the invariant the whole
// stop-flag/TT concurrency design exists to protect. If depth 1 itself is interrupted (an
// unreasonably small move time budget), the zero-value move and PV are returned; callers should
// not rely on a legal move being found if they set move_time_ms below what depth 1 costs.
//
// out, if non-nil, receives the PV of every completed iteration as it finishes: callers driving
// a UCI `info` stream should pass a channel with capacity >= 1 and drain it continuously; a full
// channel has its pending, now-stale value replaced rather than blocking the search.
func IterativeDeepen(ctx context.Context, b *board.Board, st *State, depthLimit int, out chan PV) (board.Move, PV) {
	st.Start = time.Now()

	var committed board.Move
	var last PV

	for depth := 1; ; depth++ {
		st.RootDepth = depth
		st.RootBestMove = board.Move{}
		st.Nodes = 0

		iterStart := time.Now()
		score := Negamax(ctx, b, st, depth, -board.MaxScore, board.MaxScore, true)

		if st.StopFlag.Load() || elapsedMS(st) > st.MoveTimeMS {
			return committed, last
		}

		committed = st.RootBestMove
		last = PV{
			Depth:    depth,
			Score:    score,
			Moves:    []board.Move{committed},
			Nodes:    st.Nodes,
			Time:     time.Since(iterStart),
			Hashfull: st.TT.Hashfull(),
		}

		if out != nil {
			select {
			case <-out:
			default:
			}
			out <- last
		}

		if depthLimit > 0 && depth >= depthLimit {
			return committed, last
		}
		if plies, ok := MateIn(score); ok && plies <= depth {
			return committed, last
		}
	}
}

// MateIn reports the number of plies to a forced mate a root score represents, and whether the
// score represents one at all. Scores within 999 centipawns of MateScore are mate scores by
// construction (see the distance-adjusted convention in Negamax); any plausible material
// evaluation falls far short of that margin.
func MateIn(score board.Score) (int, bool) {
	abs := score
	if abs < 0 {
		abs = -abs
	}
	d := MateScore - abs
	if d < 0 || d > 999 {
		return 0, false
	}
	return int(d), true
}
