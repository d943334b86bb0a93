package board

import "fmt"

// Score is a signed move or position score in centipawns. Evaluators and the search report it relative to the side to move. It is wide
// enough to carry mate distance scores, which exceed any plausible material evaluation.
type Score int32

// Centipawns is an alias for Score: the Evaluator's return unit and the search's score unit.
type Centipawns = Score

const (
	MinScore Score = -1000000
	MaxScore Score = 1000000
)

func (s Score) String() string {
	return fmt.Sprintf("%.2f", float64(s)/100)
}

// Crop clamps a Score into [MinScore;MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}
