package board

import (
	"container/heap"
	"fmt"
	"math"
	"sort"
	"strings"
)

// MovePriority represents the move order priority.
type MovePriority int16

// MovePriorityFn assigns a priority to moves
type MovePriorityFn func(move Move) MovePriority

// First puts the given move first. Otherwise uses the given function.
func First(first Move, fn MovePriorityFn) MovePriorityFn {
	return func(m Move) MovePriority {
		if first.Equals(m) {
			return math.MaxInt16
		}
		return fn(m)
	}
}

// SortByPriority sorts the moves by priority, preserving order for same priority.
func SortByPriority(moves []Move, fn MovePriorityFn) {
	sort.SliceStable(moves, func(i, j int) bool {
		return fn(moves[i]) > fn(moves[j])
	})
}

// MoveList is move priority queue for move ordering.
type MoveList struct {
	h moveHeap
}

// NewMoveList returns a new move list with the given priorities.
func NewMoveList(moves []Move, fn MovePriorityFn) *MoveList {
	h := moveHeap(make([]elm, len(moves)))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m)}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next returns the next move. It is the highest priority move in the list.
func (ml *MoveList) Next() (Move, bool) {
	if ml.Size() == 0 {
		return Move{}, false
	}
	ret := heap.Pop(&ml.h).(elm)
	return ret.m, true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

func (ml *MoveList) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.Size())
}

// FormatMoves joins moves with fn, space-separated. Used by drivers to render a line or PV in
// whatever notation fn implements (PrintMove, Move.String, SAN, ...).
func FormatMoves(moves []Move, fn func(Move) string) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = fn(m)
	}
	return strings.Join(parts, " ")
}

// PrintMove renders a move as "<from>-<to>", e.g. "d2-d4". Distinct from Move.String's
// UCI "d2d4" form, which protocol drivers send over the wire; this is for human-facing output.
func PrintMove(m Move) string {
	if m.IsZero() {
		return "0000"
	}
	return fmt.Sprintf("%v-%v", m.From, m.To)
}

// PrintMoves renders a move sequence as space-separated "from-to" pairs.
func PrintMoves(moves []Move) string {
	return FormatMoves(moves, PrintMove)
}

type elm struct {
	m   Move
	val MovePriority
}

type moveHeap []elm

func (h moveHeap) Len() int {
	return len(h)
}

func (h moveHeap) Less(i, j int) bool {
	return h[i].val > h[j].val
}

func (h moveHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *moveHeap) Push(x interface{}) {
	panic("fixed size heap")
}

func (h *moveHeap) Pop() interface{} {
	n := len(*h)
	ret := (*h)[n-1]
	*h = (*h)[0 : n-1]
	return ret
}
