package searchctl_test

import (
	"testing"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/search/searchctl"
	"github.com/stretchr/testify/assert"
)

func TestTimeControlLimits(t *testing.T) {
	tc := searchctl.TimeControl{
		White: 60 * time.Second, WhiteInc: 2 * time.Second,
		Black: 30 * time.Second, BlackInc: 1 * time.Second,
	}

	soft, hard := tc.Limits(board.White)
	assert.Equal(t, time.Second+2*time.Second, soft)
	assert.GreaterOrEqual(t, hard, soft)

	soft, hard = tc.Limits(board.Black)
	assert.Equal(t, 500*time.Millisecond+time.Second, soft)
	assert.GreaterOrEqual(t, hard, soft)
}

func TestTimeControlLimitsWithMovesToGo(t *testing.T) {
	tc := searchctl.TimeControl{White: 10 * time.Second, Moves: 5}

	soft, hard := tc.Limits(board.White)
	assert.Greater(t, soft, time.Duration(0))
	assert.GreaterOrEqual(t, hard, soft)
}

func TestOptionsString(t *testing.T) {
	opt := searchctl.Options{Infinite: true}
	assert.Contains(t, opt.String(), "infinite")
}
