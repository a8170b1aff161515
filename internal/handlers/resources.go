package handlers

import (
	"log/slog"

	"github.com/0x9900/sunfluxbot/core/logger"
	tghelpers "github.com/0x9900/sunfluxbot/core/telegram/helpers"
	"github.com/0x9900/sunfluxbot/internal/catalog"

	tele "gopkg.in/telebot.v4"
)

// Graph returns the handler delivering the catalog resource bound to a
// command. An unknown extension in the table is a hard error surfaced
// through the top-level reporter.
func (h *Set) Graph(command string) tele.HandlerFunc {
	return func(c tele.Context) error {
		res, ok := catalog.Lookup(command)
		if !ok {
			return h.NotFound(c)
		}
		kind, err := catalog.KindOf(res)
		if err != nil {
			return err
		}

		url := catalog.FreshURL(res.URL, kind.Window(), h.now())
		caption := res.Caption + catalog.Source

		ctx := tghelpers.BuildContext(c)
		logger.Info(ctx, "fetch", "resource.send",
			slog.String("command", command),
			slog.String("resource", res.URL),
			slog.String("url", url),
		)

		if kind == catalog.KindVideo {
			return tghelpers.SendVideoURL(c, url, caption)
		}
		return tghelpers.SendPhotoURL(c, url, caption)
	}
}
