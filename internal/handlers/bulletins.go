package handlers

import (
	tghelpers "github.com/0x9900/sunfluxbot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// Alerts replies with the current WWV geophysical alert bulletin.
func (h *Set) Alerts(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	text, err := h.NOAA.Alerts(ctx)
	if err != nil {
		return err
	}
	return tghelpers.SendText(c, text)
}

// Prediction replies with the forecast paragraph of the NOAA
// forecast discussion.
func (h *Set) Prediction(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	text, err := h.NOAA.ForecastDiscussion(ctx)
	if err != nil {
		return err
	}
	return tghelpers.SendText(c, text)
}
