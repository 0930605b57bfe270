package searchctl

import (
	"context"
	"fmt"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// TimeControl represents a single time budget for proving a position, unlike
// a chess clock's per-color budget: a Linear Go search proves both sides'
// play along one line at once, so there is no separate White/Black clock to
// split.
//
// Grounded on morlock's pkg/search/searchctl.TimeControl, simplified
// from a chess clock (White/Black/Moves) to a single Budget.
type TimeControl struct {
	Budget time.Duration
}

// Limits returns a soft and hard limit. After the soft limit, no new
// iterative-deepening round should start; the hard limit forcibly halts
// whatever round is in progress.
func (t TimeControl) Limits() (soft, hard time.Duration) {
	soft = t.Budget / 2
	hard = t.Budget
	return soft, hard
}

func (t TimeControl) String() string {
	return fmt.Sprintf("%.1fs", t.Budget.Seconds())
}

// EnforceTimeControl schedules a hard halt, if a TimeControl is present, and
// returns the soft limit.
func EnforceTimeControl(ctx context.Context, h Handle, tc lang.Optional[TimeControl]) (time.Duration, bool) {
	c, ok := tc.V()
	if !ok {
		return 0, false
	}

	soft, hard := c.Limits()
	time.AfterFunc(hard, func() {
		h.Halt()
	})

	logw.Debugf(ctx, "Time control limits for %v: [%v; %v]", c, soft, hard)
	return soft, true
}
