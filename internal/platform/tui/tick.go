// Package tui provides the Bubble Tea front end for snake: the frame loop,
// key bindings, menus, the score table and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per rendered frame. Loop identifies the model that
// scheduled it; frames from any other loop are dropped.
type FrameMsg struct {
	Loop int64
	At   time.Time
}

var loopIDs atomic.Int64

// newLoopID returns a fresh frame loop identifier.
func newLoopID() int64 {
	return loopIDs.Add(1)
}

// frameCmd schedules the next frame of loop after interval.
func frameCmd(loop int64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Loop: loop, At: t}
	})
}

// frameDelta returns the time elapsed between two frames, clamped to
// [0, limit]. A zero previous frame yields zero.
func frameDelta(prev, now time.Time, limit time.Duration) time.Duration {
	if prev.IsZero() {
		return 0
	}
	dt := now.Sub(prev)
	if dt < 0 {
		return 0
	}
	if limit > 0 && dt > limit {
		return limit
	}
	return dt
}
