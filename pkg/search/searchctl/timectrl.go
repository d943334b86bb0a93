package searchctl

import (
	"fmt"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
)

// TimeControl represents the UCI time-control parameters for one side of a game: remaining
// clock time, per-move increment, and (optionally) the number of moves left to the next control.
type TimeControl struct {
	White, Black       time.Duration
	WhiteInc, BlackInc time.Duration
	Moves              int // 0 == rest of game
}

// Limits returns the soft and hard search-time budgets for the side to move. Soft is the
// spec-mandated "remaining/60 + increment" allotment and is what the outer iteration loop
// compares elapsed time against; hard is a richer fractional-budget backstop (assuming 40 moves
// to go unless movestogo said otherwise) armed as a time.AfterFunc deadline so a single
// runaway iteration cannot overrun the clock by an unbounded amount.
func (t TimeControl) Limits(c board.Color) (soft, hard time.Duration) {
	remainder, inc := t.White, t.WhiteInc
	if c == board.Black {
		remainder, inc = t.Black, t.BlackInc
	}

	soft = remainder/60 + inc

	moves := time.Duration(40)
	if t.Moves > 0 {
		moves = time.Duration(t.Moves) + 1
	}
	hard = 3*(remainder/(2*moves)) + inc
	if hard < soft {
		hard = soft
	}
	return soft, hard
}

func (t TimeControl) String() string {
	if t.Moves == 0 {
		return fmt.Sprintf("%.1f<>%.1f", t.White.Seconds(), t.Black.Seconds())
	}
	return fmt.Sprintf("%.1f<>%.1f[moves=%v]", t.White.Seconds(), t.Black.Seconds(), t.Moves)
}
