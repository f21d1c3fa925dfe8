// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping, frame timing, and the
// SSH server for remote play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// baseFrame is the 60fps baseline frame duration that dtFactor is
// normalized against.
const baseFrame = time.Second / 60

// maxDTFactor caps the normalized frame time so a suspended terminal does
// not teleport the world on resume.
const maxDTFactor = 3.0

// TickMsg carries the wall-clock time of a simulation tick so the model
// can measure the elapsed interval.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// dtFactor normalizes a measured frame interval against the 60fps
// baseline. A zero previous timestamp (first frame) yields exactly 1.
func dtFactor(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 1
	}
	dt := now.Sub(prev).Seconds() / baseFrame.Seconds()
	if dt < 0 {
		return 0
	}
	if dt > maxDTFactor {
		return maxDTFactor
	}
	return dt
}
