// Package search implements the negamax alpha-beta search with quiescence and a lockless
// transposition table.
package search

import (
	"math/bits"
	"sync"

	"github.com/corvidchess/corvid/pkg/board"
	"go.uber.org/atomic"
)

// Bound records how a stored score relates to the search window it was computed in.
type Bound uint8

const (
	// Exact means the stored score is the true minimax value.
	Exact Bound = iota
	// Lower means the stored score is a lower bound (a beta cutoff occurred).
	Lower
	// Upper means the stored score is an upper bound (no move raised alpha).
	Upper
)

func (b Bound) String() string {
	switch b {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return "exact"
	}
}

// Entry is a decoded transposition table hit.
type Entry struct {
	Score board.Score
	Depth uint8
	Bound Bound
	Best  board.Move
}

// defaultHashMiB is used by NewTable and Resize(0).
const defaultHashMiB = 16

// slotBytes is the size of one slot: two 64-bit words.
const slotBytes = 16

type slot struct {
	data       atomic.Uint64
	keyXorData atomic.Uint64
}

// Table is a fixed-size, hash-indexed transposition table shared across the search goroutine
// and the driver without per-slot locking. Each slot is always-replace: Store never checks the
// existing entry's depth or age before overwriting.
//
// Entries are verified with the classic XOR trick: a slot stores data and keyXorData = key ^
// data as two independent atomic words. Store writes data first, then keyXorData. Probe reads
// keyXorData first, then data, and recomputes key = keyXorData ^ data. A torn read (the writer
// updated one word but not the other between the reader's two loads) makes the recomputed key
// fail to match the probed hash with overwhelming probability, so it is silently treated as a
// miss rather than corrupting the search. No mutex is needed on the hot path.
type Table struct {
	mu    sync.RWMutex // guards slots/mask swap on Resize/Clear, not the hot Probe/Store path
	slots []slot
	mask  uint64
}

// NewTable allocates a table of approximately sizeMiB mebibytes, rounded down to the nearest
// power-of-two slot count. sizeMiB == 0 uses a default size.
func NewTable(sizeMiB uint64) *Table {
	t := &Table{}
	t.Resize(sizeMiB)
	return t
}

// Resize reallocates the table to approximately sizeMiB mebibytes, discarding all entries.
// Not safe to call concurrently with an in-flight search.
func (t *Table) Resize(sizeMiB uint64) {
	if sizeMiB == 0 {
		sizeMiB = defaultHashMiB
	}

	n := nearestPowerOfTwo(sizeMiB << 20 / slotBytes)
	if n == 0 {
		n = 1
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.slots = make([]slot, n)
	t.mask = n - 1
}

// Clear zeroes every slot without reallocating.
func (t *Table) Clear() {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i := range t.slots {
		t.slots[i].data.Store(0)
		t.slots[i].keyXorData.Store(0)
	}
}

// Probe looks up the entry for hash. Returns false on a miss or a torn/absent slot.
func (t *Table) Probe(hash board.ZobristHash) (Entry, bool) {
	t.mu.RLock()
	s := &t.slots[uint64(hash)&t.mask]
	t.mu.RUnlock()

	kx := s.keyXorData.Load()
	data := s.data.Load()
	if kx^data != uint64(hash) {
		return Entry{}, false
	}
	return decode(data), true
}

// Store always replaces whatever occupies hash's slot.
func (t *Table) Store(hash board.ZobristHash, score board.Score, depth uint8, bound Bound, best board.Move) {
	t.mu.RLock()
	s := &t.slots[uint64(hash)&t.mask]
	t.mu.RUnlock()

	data := encode(score, depth, bound, best)
	s.data.Store(data)
	s.keyXorData.Store(uint64(hash) ^ data)
}

// Hashfull reports occupancy in permille (0-1000), sampling the first 1000 slots per the UCI
// convention.
func (t *Table) Hashfull() uint32 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := len(t.slots)
	if n > 1000 {
		n = 1000
	}

	var used uint32
	for i := 0; i < n; i++ {
		kx := t.slots[i].keyXorData.Load()
		data := t.slots[i].data.Load()
		if kx^data != 0 {
			used++
		}
	}
	return used
}

func encode(score board.Score, depth uint8, bound Bound, best board.Move) uint64 {
	packed := uint64(board.Pack(best))
	return packed | uint64(bound)<<16 | uint64(depth)<<18 | uint64(uint32(score))<<26
}

func decode(data uint64) Entry {
	packed := board.PackedMove(data & 0xffff)
	bound := Bound((data >> 16) & 0x3)
	depth := uint8((data >> 18) & 0xff)
	score := board.Score(int32(uint32(data >> 26)))
	return Entry{Score: score, Depth: depth, Bound: bound, Best: packed.Unpack()}
}

func nearestPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return uint64(1) << uint(63-bits.LeadingZeros64(n))
}
