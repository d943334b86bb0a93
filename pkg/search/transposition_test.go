package search_test

import (
	"math/rand"
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestTranspositionTable(t *testing.T) {
	// (1) Tables of different sizes can be allocated; the slot count is not inspected here.

	tt := search.NewTable(1)
	tt2 := search.NewTable(2)
	_ = tt2

	// (2) Read/write round-trips and a miss on an unrelated hash.

	a := board.ZobristHash(rand.Uint64())

	_, ok := tt.Probe(a)
	assert.False(t, ok)

	m := board.Move{From: board.G4, To: board.G8, Promotion: board.Queen}
	tt.Store(a, board.Score(123), 5, search.Exact, m)

	entry, ok := tt.Probe(a)
	assert.True(t, ok)
	assert.Equal(t, search.Exact, entry.Bound)
	assert.Equal(t, uint8(5), entry.Depth)
	assert.Equal(t, board.Score(123), entry.Score)
	assert.Equal(t, m, entry.Best)

	_, ok = tt.Probe(a ^ 0xff0000)
	assert.False(t, ok)

	// (3) Always-replace: a second Store to the same slot overwrites regardless of depth.

	tt.Store(a, board.Score(-7), 1, search.Upper, board.Move{})
	entry, ok = tt.Probe(a)
	assert.True(t, ok)
	assert.Equal(t, board.Score(-7), entry.Score)
	assert.Equal(t, uint8(1), entry.Depth)

	// (4) Clear zeroes every slot.

	tt.Clear()
	_, ok = tt.Probe(a)
	assert.False(t, ok)
}

func TestTranspositionTableHashfull(t *testing.T) {
	tt := search.NewTable(1)
	assert.Equal(t, uint32(0), tt.Hashfull())

	for i := uint64(0); i < 100; i++ {
		tt.Store(board.ZobristHash(i+1), board.Score(i), 1, search.Exact, board.Move{})
	}
	assert.Greater(t, tt.Hashfull(), uint32(0))
}
