package board

// Perft counts the leaf nodes of the pseudo-legal move tree rooted at pos after exactly depth
// plies, discarding branches that leave the mover's own king in check. It is the standard
// move-generator debugging metric: matching a position's well-known perft figures at several
// depths is strong evidence the generator has no missing or spurious moves. See:
// https://www.chessprogramming.org/Perft_Results.
func Perft(pos *Position, turn Color, depth int) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range pos.PseudoLegalMoves(turn) {
		if next, ok := pos.Move(m); ok {
			nodes += Perft(next, turn.Opponent(), depth-1)
		}
	}
	return nodes
}
