package searchctl

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/search"
	"go.uber.org/atomic"
)

// Iterative is a Launcher that runs pkg/search's iterative-deepening negamax on a forked board.
type Iterative struct{}

func (Iterative) Launch(ctx context.Context, b *board.Board, tt *search.Table, eval search.Evaluator, opt Options) (Handle, <-chan search.PV) {
	st := search.NewState(eval, tt)
	st.MoveTimeMS, st.StrictTiming = resolveMoveTime(opt, b.Turn())

	depthLimit := 0
	if v, ok := opt.DepthLimit.V(); ok {
		depthLimit = int(v)
	}

	out := make(chan search.PV, 1)
	h := &handle{stop: st.StopFlag, done: make(chan struct{})}

	go func() {
		defer close(out)
		_, pv := search.IterativeDeepen(ctx, b, st, depthLimit, out)
		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()
		close(h.done)
	}()

	if hard, ok := hardDeadline(opt, b.Turn()); ok {
		h.timer = time.AfterFunc(hard, func() { st.StopFlag.Store(true) })
	}

	return h, out
}

// resolveMoveTime converts Options into the (moveTimeMS, strictTiming) pair Negamax's
// cooperative timing check consumes, per the time-management rules: an explicit "movetime" is
// strict; "infinite" disables the soft budget entirely; a clock-based control uses the
// spec-mandated "remaining/60 + increment" soft allotment, enforced by the outer iteration loop
// and backstopped by the hard-deadline timer armed below rather than by the per-node strict
// check.
func resolveMoveTime(opt Options, turn board.Color) (moveTimeMS uint32, strict bool) {
	if opt.Infinite {
		return math.MaxUint32, false
	}
	if v, ok := opt.MoveTimeMS.V(); ok {
		return v, true
	}
	if tc, ok := opt.TimeControl.V(); ok {
		soft, _ := tc.Limits(turn)
		return uint32(soft.Milliseconds()), false
	}
	return math.MaxUint32, false
}

// hardDeadline returns the wall-clock duration after which the search is force-stopped
// regardless of the cooperative timing check, bounding worst-case abort latency for
// non-strict (clock-based) time controls. Strict movetime and infinite searches have no
// separate hard deadline: the former is already self-enforcing, the latter must run until
// explicitly halted.
func hardDeadline(opt Options, turn board.Color) (time.Duration, bool) {
	if _, strict := opt.MoveTimeMS.V(); strict || opt.Infinite {
		return 0, false
	}
	tc, ok := opt.TimeControl.V()
	if !ok {
		return 0, false
	}
	_, hard := tc.Limits(turn)
	return hard, true
}

type handle struct {
	stop  *atomic.Bool
	done  chan struct{}
	timer *time.Timer

	mu sync.Mutex
	pv search.PV
}

// Halt stops the search, if still running, and returns its last completed PV. Idempotent:
// the stop flag only ever transitions false->true and done, once closed, stays closed, so a
// second call observes the same result without re-running anything.
func (h *handle) Halt() search.PV {
	h.stop.Store(true)
	if h.timer != nil {
		h.timer.Stop()
	}
	<-h.done

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pv
}
