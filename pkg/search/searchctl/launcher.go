// Package searchctl hosts a search on a worker goroutine and manages UCI time parameters around
// it: it never runs search logic itself, only translates a position and a time/depth budget
// into a call to pkg/search's IterativeDeepen, and routes the stop signal.
package searchctl

import (
	"context"
	"fmt"
	"strings"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Options hold the per-search parameters the UCI/console driver may supply. The zero value
// means "no limit of that kind": an idle Options with every field unset searches until stopped.
type Options struct {
	// DepthLimit, if set, stops after the given ply depth completes. Zero/unset means no limit.
	DepthLimit lang.Optional[uint]
	// MoveTimeMS, if set, is an exact, strictly-enforced search budget (UCI "movetime").
	MoveTimeMS lang.Optional[uint32]
	// TimeControl, if set, is the remaining-clock/increment budget (UCI "wtime"/"btime"/...).
	TimeControl lang.Optional[TimeControl]
	// Infinite disables all time limits; only DepthLimit or an explicit Halt can stop the search.
	Infinite bool
}

func (o Options) String() string {
	var parts []string
	if v, ok := o.DepthLimit.V(); ok {
		parts = append(parts, fmt.Sprintf("depth=%v", v))
	}
	if v, ok := o.MoveTimeMS.V(); ok {
		parts = append(parts, fmt.Sprintf("movetime=%vms", v))
	}
	if v, ok := o.TimeControl.V(); ok {
		parts = append(parts, fmt.Sprintf("time=%v", v))
	}
	if o.Infinite {
		parts = append(parts, "infinite")
	}
	return fmt.Sprintf("[%v]", strings.Join(parts, ", "))
}

// Launcher starts searches on a worker goroutine.
type Launcher interface {
	// Launch starts a new search from b, which must be an exclusive (forked) board the caller
	// will not mutate concurrently. tt and eval are shared with, respectively, other concurrent
	// searches and nobody. Returns a Handle to stop the search and a channel of PVs, one per
	// completed iteration, closed when the search ends.
	Launch(ctx context.Context, b *board.Board, tt *search.Table, eval search.Evaluator, opt Options) (Handle, <-chan search.PV)
}

// Handle manages one in-flight (or finished) search.
type Handle interface {
	// Halt stops the search, if still running, and returns the PV of its last completed
	// iteration. Idempotent: repeated calls return the same result without blocking twice.
	Halt() search.PV
}
