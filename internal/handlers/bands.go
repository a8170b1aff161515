package handlers

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/0x9900/sunfluxbot/core/logger"
	"github.com/0x9900/sunfluxbot/core/telegram/callbacks"
	tghelpers "github.com/0x9900/sunfluxbot/core/telegram/helpers"
	"github.com/0x9900/sunfluxbot/core/telegram/keyboard"
	"github.com/0x9900/sunfluxbot/core/telegram/state"
	"github.com/0x9900/sunfluxbot/internal/catalog"
	"github.com/0x9900/sunfluxbot/internal/zones"

	"github.com/pkg/errors"
	tele "gopkg.in/telebot.v4"
)

// Callback keys of the propagation dialog.
const (
	CBContinent = "bands_continent"
	CBZone      = "bands_zone"
	CBAllZones  = "bands_all"
)

// Dialog states. The dialog holds exactly one piece of session data,
// the chosen continent, and always ends after the second callback.
const (
	StateBandsContinent state.State = "bands:continent"
	StateBandsZone      state.State = "bands:zone"

	tempContinent = "continent"
)

// Bands opens the propagation dialog with the continent keyboard.
// Re-issuing the command restarts the dialog from the first step.
func (h *Set) Bands(c tele.Context) error {
	userID := c.Sender().ID
	h.States.Clear(userID)
	h.States.SetState(userID, StateBandsContinent)
	return tghelpers.SendText(c, "Propagation: Choose a continent",
		&tele.SendOptions{ReplyMarkup: ContinentKeyboard()})
}

// ContinentChosen swaps the continent keyboard for the zone keyboard.
func (h *Set) ContinentChosen(c tele.Context) error {
	code := callbacks.CallbackPayload(c)
	cont, ok := zones.ByCode(code)
	if !ok {
		return errors.Errorf("unknown continent %q", code)
	}

	userID := c.Sender().ID
	h.States.SetTemp(userID, tempContinent, cont.Code)
	h.States.SetState(userID, StateBandsZone)

	return tghelpers.EditMD(c, "Choose a CQZone", ZoneKeyboard(cont.Code))
}

// ZoneChosen delivers the propagation graph for a single CQ zone and
// ends the dialog.
func (h *Set) ZoneChosen(c tele.Context) error {
	zone, err := callbacks.PayloadInt(c)
	if err != nil {
		return errors.Wrap(err, "bands zone payload")
	}

	url := zones.ZoneGraphURL(zone, h.now())
	caption := fmt.Sprintf("Propagation for CQZone %d%s", zone, catalog.Source)
	return h.deliverGraph(c, url, caption, strconv.Itoa(zone))
}

// AllZonesChosen delivers the whole-continent graph and ends the dialog.
func (h *Set) AllZonesChosen(c tele.Context) error {
	code := callbacks.CallbackPayload(c)
	cont, ok := zones.ByCode(code)
	if !ok {
		return errors.Errorf("unknown continent %q", code)
	}

	url := zones.ContinentGraphURL(cont.Code, h.now())
	caption := cont.Farewell + catalog.Source
	return h.deliverGraph(c, url, caption, cont.Code)
}

func (h *Set) deliverGraph(c tele.Context, url, caption, choice string) error {
	userID := c.Sender().ID

	ctx := tghelpers.BuildContext(c)
	logger.Info(ctx, "fetch", "bands.send",
		slog.String("zone", choice),
		slog.String("url", url),
	)

	if err := tghelpers.SendPhotoURL(c, url, caption); err != nil {
		return err
	}
	tghelpers.ClearInlineKeyboard(c)
	h.States.Clear(userID)
	return nil
}

// ContinentKeyboard is the first step of the dialog: one row with one
// button per continent.
func ContinentKeyboard() *tele.ReplyMarkup {
	row := make([]keyboard.InlineBtn, 0, 2)
	for _, cont := range zones.Continents() {
		row = append(row, keyboard.InlineBtn{
			Text:   cont.Label,
			Unique: CBContinent,
			Data:   cont.Code,
		})
	}
	return keyboard.InlineButtonsRows(row)
}

// ZoneKeyboard is the second step: the continent's CQ zones on one row
// and an all-zones shortcut below.
func ZoneKeyboard(code string) *tele.ReplyMarkup {
	cont, ok := zones.ByCode(code)
	if !ok {
		return keyboard.InlineButtonsRows()
	}

	zoneRow := make([]keyboard.InlineBtn, 0, 4)
	for _, zone := range zones.ZonesFor(cont.Code) {
		zoneRow = append(zoneRow, keyboard.InlineBtn{
			Text:   fmt.Sprintf("CQZone %d", zone),
			Unique: CBZone,
			Data:   strconv.Itoa(zone),
		})
	}
	allRow := []keyboard.InlineBtn{{
		Text:   fmt.Sprintf("%s, all Zones", cont.Label),
		Unique: CBAllZones,
		Data:   cont.Code,
	}}
	return keyboard.InlineButtonsRows(zoneRow, allRow)
}
