package handlers

import (
	"strings"
	"testing"

	"github.com/0x9900/sunfluxbot/internal/catalog"
	"github.com/0x9900/sunfluxbot/internal/terms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpTextSortedAndComplete(t *testing.T) {
	text := HelpText()
	require.True(t, strings.HasPrefix(text, "*Group commands:*"))

	for _, cmd := range catalog.Commands() {
		assert.Contains(t, text, cmd+" : ")
	}
	for cmd := range builtinDescriptions {
		assert.Contains(t, text, cmd+" : ")
	}

	// Entries appear in sorted order.
	lines := strings.Split(text, "\n")[2:]
	for i := 1; i < len(lines); i++ {
		assert.Less(t, lines[i-1], lines[i])
	}
}

func TestContinentKeyboard(t *testing.T) {
	markup := ContinentKeyboard()
	require.Len(t, markup.InlineKeyboard, 1)
	row := markup.InlineKeyboard[0]
	require.Len(t, row, 2)
	assert.Equal(t, "North America", row[0].Text)
	assert.Equal(t, "NA", row[0].Data)
	assert.Equal(t, CBContinent, row[0].Unique)
	assert.Equal(t, "Europe", row[1].Text)
	assert.Equal(t, "EU", row[1].Data)
}

func TestZoneKeyboard(t *testing.T) {
	markup := ZoneKeyboard("EU")
	require.Len(t, markup.InlineKeyboard, 2)

	zoneRow := markup.InlineKeyboard[0]
	require.Len(t, zoneRow, 4)
	assert.Equal(t, "CQZone 14", zoneRow[0].Text)
	assert.Equal(t, "14", zoneRow[0].Data)
	assert.Equal(t, CBZone, zoneRow[0].Unique)
	assert.Equal(t, "21", zoneRow[3].Data)

	allRow := markup.InlineKeyboard[1]
	require.Len(t, allRow, 1)
	assert.Equal(t, "Europe, all Zones", allRow[0].Text)
	assert.Equal(t, "EU", allRow[0].Data)
	assert.Equal(t, CBAllZones, allRow[0].Unique)
}

func TestZoneKeyboardUnknownContinent(t *testing.T) {
	markup := ZoneKeyboard("XX")
	assert.Empty(t, markup.InlineKeyboard)
}

func TestTermsKeyboardTwoPerRow(t *testing.T) {
	dict, err := terms.Parse([]byte("Alpha: a\nBravo: b\nCharlie: c\nDelta: d\nEcho: e\n"))
	require.NoError(t, err)

	markup := TermsKeyboard(dict)
	require.Len(t, markup.InlineKeyboard, 3)
	assert.Len(t, markup.InlineKeyboard[0], 2)
	assert.Len(t, markup.InlineKeyboard[1], 2)
	assert.Len(t, markup.InlineKeyboard[2], 1)
	assert.Equal(t, "Alpha", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, CBTerm, markup.InlineKeyboard[0][0].Unique)
}

func TestDefinitionText(t *testing.T) {
	dict, err := terms.Parse([]byte("MUF: maximum usable frequency\n"))
	require.NoError(t, err)

	assert.Equal(t,
		"*Information about muf:*\nmaximum usable frequency",
		definitionText(dict, "muf"))
	assert.Equal(t,
		"*Information about qrm:*\nNo definition found",
		definitionText(dict, "qrm"))
}
