package handlers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/0x9900/sunfluxbot/core/telegram/format"
	tghelpers "github.com/0x9900/sunfluxbot/core/telegram/helpers"
	"github.com/0x9900/sunfluxbot/internal/catalog"

	tele "gopkg.in/telebot.v4"
)

// builtinDescriptions covers the commands that are not part of the
// resource catalog; /help merges them with the catalog captions.
var builtinDescriptions = map[string]string{
	"/help":       "This message.",
	"/bands":      "Propagation by band and continent.",
	"/alerts":     "Solar activity alerts.",
	"/prediction": "Forecast Discussion.",
	"/info":       "Definition of certain terms.",
}

// Start greets the sender and points at /help.
func (h *Set) Start(c tele.Context) error {
	user := c.Sender()
	name := "there"
	if user != nil && user.FirstName != "" {
		if escaped, err := format.EscapeMarkdown(user.FirstName, format.MarkdownV1); err == nil {
			name = escaped
		} else {
			name = user.FirstName
		}
	}

	mention := name
	if user != nil {
		mention = fmt.Sprintf("[%s](tg://user?id=%d)", name, user.ID)
	}

	text := strings.Join([]string{
		fmt.Sprintf("Hi %s and welcome.", mention),
		"Use '/help' to see the list of commands.",
		"SunFluxBot developped by [W6BSD](https://0x9900.com/)",
	}, "\n")
	return tghelpers.SendMD(c, text)
}

// Help lists every command with a one-line description.
func (h *Set) Help(c tele.Context) error {
	return tghelpers.SendMD(c, HelpText())
}

// HelpText builds the sorted /help message body.
func HelpText() string {
	descriptions := catalog.Captions()
	for cmd, label := range builtinDescriptions {
		descriptions[cmd] = label
	}

	cmds := make([]string, 0, len(descriptions))
	for cmd := range descriptions {
		cmds = append(cmds, cmd)
	}
	sort.Strings(cmds)

	lines := make([]string, 0, len(cmds)+1)
	lines = append(lines, "*Group commands:*\n")
	for _, cmd := range cmds {
		lines = append(lines, fmt.Sprintf("%s : %s", cmd, descriptions[cmd]))
	}
	return strings.Join(lines, "\n")
}
