package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/0x9900/sunfluxbot/core/buildinfo"
	tghelpers "github.com/0x9900/sunfluxbot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// Status reports runtime health to the operator. Registered hidden and
// admin-only.
func (h *Set) Status(c tele.Context) error {
	uptime := time.Duration(0)
	if !h.StartedAt.IsZero() {
		uptime = h.now().Sub(h.StartedAt).Round(time.Second)
	}
	var sendErrors uint64
	if h.Errors != nil {
		sendErrors = h.Errors()
	}

	lines := []string{
		fmt.Sprintf("version: %s (%s)", buildinfo.Version, buildinfo.Commit),
		fmt.Sprintf("built: %s", buildinfo.Date),
		fmt.Sprintf("uptime: %s", uptime),
		fmt.Sprintf("send errors: %d", sendErrors),
	}
	return tghelpers.SendText(c, strings.Join(lines, "\n"))
}
