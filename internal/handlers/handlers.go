// Package handlers implements the bot's commands, callbacks, and the
// guided propagation dialog.
package handlers

import (
	"time"

	"github.com/0x9900/sunfluxbot/core/telegram/state"
	"github.com/0x9900/sunfluxbot/internal/noaa"
	"github.com/0x9900/sunfluxbot/internal/terms"
)

// Set bundles the dependencies shared by all handlers.
type Set struct {
	States state.Manager
	NOAA   *noaa.Client
	Terms  *terms.Dictionary

	// Errors reports the outbound dispatcher failure count for /status.
	Errors func() uint64
	// StartedAt is the process start time, reported by /status.
	StartedAt time.Time

	// Clock is replaceable in tests. Defaults to time.Now.
	Clock func() time.Time
}

func (h *Set) now() time.Time {
	if h.Clock != nil {
		return h.Clock()
	}
	return time.Now()
}
