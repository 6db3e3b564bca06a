package engine

import "time"

// MarkFullRows tags every full row as clearing and returns the new board
// with the indices it marked, top first. Rows already clearing from an
// earlier pass are left alone so they are never counted twice.
func MarkFullRows(b Board) (Board, []int) {
	var marked []int
	for y := range b {
		if b.RowClearing(y) || !b.RowFull(y) {
			continue
		}
		for x := range b[y] {
			b[y][x].State = LifecycleClearing
		}
		marked = append(marked, y)
	}
	return b, marked
}

// CollapseClearing removes every clearing row, shifting the rows above it
// down, and returns the new board with the removed indices.
func CollapseClearing(b Board) (Board, []int) {
	rows := b.ClearingRows()
	if len(rows) == 0 {
		return b, nil
	}
	return b.RemoveAndCollapse(rows), rows
}

// LineClear owns the delayed collapse of marked rows. At most one collapse
// is pending; scheduling a new one cancels the old. Every schedule carries
// a token, and a callback whose token is stale does nothing even if its
// timer could not be stopped in time.
type LineClear struct {
	clock *Clock
	delay time.Duration
	timer *Timer
	token uint64
}

// NewLineClear returns a manager that collapses rows delay after marking.
func NewLineClear(clock *Clock, delay time.Duration) *LineClear {
	return &LineClear{clock: clock, delay: delay}
}

// Schedule arranges for fn to run after the delay, replacing any pending
// collapse.
func (lc *LineClear) Schedule(fn func()) {
	lc.Cancel()
	token := lc.token
	lc.timer = lc.clock.AfterFunc(lc.delay, func() {
		if token != lc.token {
			return
		}
		lc.timer = nil
		fn()
	})
}

// Cancel drops the pending collapse, if any.
func (lc *LineClear) Cancel() {
	lc.token++
	lc.timer.Stop()
	lc.timer = nil
}

// Pending reports whether a collapse is scheduled.
func (lc *LineClear) Pending() bool {
	return lc.timer.Active()
}

// Delay returns the mark-to-collapse delay.
func (lc *LineClear) Delay() time.Duration {
	return lc.delay
}
