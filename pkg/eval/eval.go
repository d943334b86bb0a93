// Package eval contains position evaluation logic and utilities.
package eval

import "github.com/corvidchess/corvid/pkg/board"

// Evaluator is a static, side-to-move-relative position scorer.
type Evaluator interface {
	// Evaluate returns the position score in centipawns, positive favoring the side to move.
	Evaluate(b *board.Board) board.Centipawns
}

// Material scores the side to move's material and piece-square advantage: nominal piece values
// plus a flat positional term rewarding advanced, central pawns and a tucked-away king.
type Material struct{}

func (Material) Evaluate(b *board.Board) board.Centipawns {
	pos := b.Position()
	turn := b.Turn()

	var score board.Centipawns
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		c, p, ok := pos.Square(sq)
		if !ok {
			continue
		}

		v := NominalValue(p) + pst(c, p, sq)
		if c == turn {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

// NominalValue is the absolute nominal value in centipawns of a piece. The King has an
// arbitrary high value so it is never treated as tradeable material.
func NominalValue(p board.Piece) board.Centipawns {
	switch p {
	case board.Pawn:
		return 100
	case board.Bishop, board.Knight:
		return 300
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 10000
	default:
		return 0
	}
}

// NominalValueGain is the nominal material gain for a move, used by move-ordering heuristics
// that want a quick gain estimate without running the full Evaluator.
func NominalValueGain(m board.Move) board.Centipawns {
	switch m.Type {
	case board.CapturePromotion:
		return NominalValue(m.Capture) + NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Promotion:
		return NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Capture:
		return NominalValue(m.Capture)
	case board.EnPassant:
		return NominalValue(board.Pawn)
	default:
		return 0
	}
}

// pst is the piece-square term: pawns are rewarded for advancing and occupying central files,
// kings are rewarded for staying away from the center (a crude king-safety proxy in the absence
// of a separate endgame phase evaluation).
func pst(c board.Color, p board.Piece, sq board.Square) board.Centipawns {
	rank := sq.Rank().V()
	file := sq.File().V()
	if c == board.Black {
		rank = 7 - rank
	}

	switch p {
	case board.Pawn:
		advance := rank - 1 // Rank2, the starting rank, contributes zero.
		if advance < 0 {
			advance = 0
		}
		center := 3 - abs(file-4)
		if center < 0 {
			center = 0
		}
		return board.Centipawns(advance*advance*2 + center*4)
	case board.King:
		centerDist := abs(file-4) + abs(rank-4)
		return board.Centipawns((7 - centerDist) * -10)
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
