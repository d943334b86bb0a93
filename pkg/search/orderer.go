package search

import "github.com/corvidchess/corvid/pkg/board"

// OrderMoves returns moves ordered for search: the hint move (typically the transposition
// table's stored best move) first, then by a most-valuable-victim/least-valuable-attacker
// heuristic, preserving generation order within a priority tier. When mask is CapturesOnly, the
// non-hint moves are additionally filtered down to captures and promotions: the hint itself is
// always admitted, even if it is a quiet move, so quiescence still tries it first.
func OrderMoves(moves []board.Move, hint board.Move, mask board.MoveMask) []board.Move {
	if mask == board.CapturesOnly {
		filtered := moves[:0:0]
		for _, m := range moves {
			if m.Equals(hint) || m.IsCapture() || m.IsPromotion() {
				filtered = append(filtered, m)
			}
		}
		moves = filtered
	}

	board.SortByPriority(moves, board.First(hint, mvvPriority))
	return moves
}

// mvvPriority ranks captures by victim value, breaking ties by attacker value (lower attacker
// value first); non-capturing promotions rank by the promoted piece's value, while a promotion
// that also captures ranks as a capture; all other quiet moves rank lowest.
func mvvPriority(m board.Move) board.MovePriority {
	switch {
	case m.IsCapture():
		// The attacker term is capped at 15, below 16 times the smallest possible victim value
		// (1, a pawn), so that a king capturing anything still outranks every quiet move: an
		// uncapped king attacker (nominal value 100) would otherwise drag the whole term negative.
		attacker := nominalValue(m.Piece)
		if attacker > 15 {
			attacker = 15
		}
		return board.MovePriority(16*nominalValue(m.Capture) - attacker)
	case m.IsPromotion():
		return board.MovePriority(nominalValue(m.Promotion))
	default:
		return 0
	}
}

func nominalValue(p board.Piece) int16 {
	switch p {
	case board.Pawn:
		return 1
	case board.Knight, board.Bishop:
		return 3
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	case board.King:
		return 100
	default:
		return 0
	}
}
