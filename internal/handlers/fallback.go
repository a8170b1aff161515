package handlers

import (
	tghelpers "github.com/0x9900/sunfluxbot/core/telegram/helpers"
	"github.com/0x9900/sunfluxbot/core/telegram/ui"

	tele "gopkg.in/telebot.v4"
)

var _ ui.FallbackProvider = (*Set)(nil)

const notFoundReply = "Command not found. Use /help for the list of commands."

// NotFound answers any text that matches no command.
func (h *Set) NotFound(c tele.Context) error {
	return tghelpers.SendText(c, notFoundReply)
}

// UnknownText implements ui.FallbackProvider.
func (h *Set) UnknownText() tele.HandlerFunc {
	return h.NotFound
}

// UnknownCallback implements ui.FallbackProvider.
func (h *Set) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error {
		_ = c.Respond(&tele.CallbackResponse{Text: "Unsupported action"})
		return nil
	}
}
