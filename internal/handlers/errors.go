package handlers

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/0x9900/sunfluxbot/core/logger"
	tghelpers "github.com/0x9900/sunfluxbot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// NewErrorReporter builds the top-level error hook: every handler error
// and recovered panic is logged and forwarded to the operator chat.
// A failure to deliver the notification itself is swallowed.
func NewErrorReporter(developerID int64) func(error, tele.Context) {
	return func(err error, c tele.Context) {
		if err == nil {
			return
		}

		ctx := context.Background()
		if c != nil {
			ctx = tghelpers.BuildContext(c)
		}
		logger.Error(ctx, "tg", "handler.error",
			slog.String("err", logger.SanitizeLimit(err.Error(), 512)),
		)

		if developerID == 0 || c == nil || c.Bot() == nil {
			return
		}

		msg := fmt.Sprintf(
			"An exception was raised while handling an update\n<pre>%s</pre>",
			html.EscapeString(describeUpdate(err, c)),
		)
		if _, sendErr := c.Bot().Send(tele.ChatID(developerID), msg, tele.ModeHTML); sendErr != nil {
			logger.Warn(ctx, "tg", "handler.error.notify_failed",
				slog.String("err", sendErr.Error()),
			)
		}
	}
}

func describeUpdate(err error, c tele.Context) string {
	desc := "error: " + err.Error()
	if sender := c.Sender(); sender != nil {
		desc += fmt.Sprintf("\nuser: %d (%s)", sender.ID, sender.Username)
	}
	if chat := c.Chat(); chat != nil {
		desc += fmt.Sprintf("\nchat: %d (%s)", chat.ID, chat.Type)
	}
	if text := c.Text(); text != "" {
		desc += "\ntext: " + text
	}
	if cb := c.Callback(); cb != nil {
		desc += fmt.Sprintf("\ncallback: %s|%s", cb.Unique, cb.Data)
	}
	return desc
}
