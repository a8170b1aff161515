package handlers

import (
	"fmt"

	"github.com/0x9900/sunfluxbot/core/telegram/callbacks"
	tghelpers "github.com/0x9900/sunfluxbot/core/telegram/helpers"
	"github.com/0x9900/sunfluxbot/core/telegram/keyboard"
	"github.com/0x9900/sunfluxbot/internal/terms"

	tele "gopkg.in/telebot.v4"
)

// CBTerm is the callback key of the glossary keyboard.
const CBTerm = "term"

const noDefinition = "No definition found"

// Info answers "/info <term>" directly and presents the glossary
// keyboard when invoked bare.
func (h *Set) Info(c tele.Context) error {
	args := c.Args()
	if len(args) >= 1 {
		return tghelpers.SendMD(c, definitionText(h.Terms, args[0]))
	}
	return tghelpers.SendText(c, "Choose a keyword",
		&tele.SendOptions{ReplyMarkup: TermsKeyboard(h.Terms)})
}

// TermChosen answers a glossary keyboard press by replacing the
// keyboard message with the definition.
func (h *Set) TermChosen(c tele.Context) error {
	term := callbacks.CallbackPayload(c)
	return tghelpers.EditMD(c, definitionText(h.Terms, term))
}

func definitionText(dict *terms.Dictionary, term string) string {
	def, ok := dict.Lookup(term)
	if !ok {
		def = noDefinition
	}
	return fmt.Sprintf("*Information about %s:*\n%s", term, def)
}

// TermsKeyboard lists every glossary term, two buttons per row.
func TermsKeyboard(dict *terms.Dictionary) *tele.ReplyMarkup {
	names := dict.Terms()
	buttons := make([]keyboard.InlineBtn, 0, len(names))
	for _, name := range names {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   name,
			Unique: CBTerm,
			Data:   name,
		})
	}
	return keyboard.InlineButtonsNPerRow(buttons, 2)
}
