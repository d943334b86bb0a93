package eval

import (
	"math/rand"

	"github.com/corvidchess/corvid/pkg/board"
)

// random wraps an Evaluator with bounded noise, useful for avoiding repeated games against a
// deterministic opponent. limit is the span, in millipawns, of the noise added/removed: the
// actual perturbation is uniform in [-limit/2; limit/2) millipawns, truncated toward zero to
// whole centipawns.
type random struct {
	e     Evaluator
	rand  *rand.Rand
	limit int
}

// Randomize wraps e with up to millipawns of centered uniform noise, seeded by seed. millipawns
// <= 0 returns e unmodified.
func Randomize(e Evaluator, millipawns int, seed int64) Evaluator {
	if millipawns <= 0 {
		return e
	}
	return &random{e: e, rand: rand.New(rand.NewSource(seed)), limit: millipawns}
}

func (n *random) Evaluate(b *board.Board) board.Centipawns {
	noise := board.Centipawns(n.rand.Intn(n.limit)-n.limit/2) / 10
	return n.e.Evaluate(b) + noise
}
