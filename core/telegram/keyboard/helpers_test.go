package keyboard

import "testing"

func TestInlineButtonsNPerRow(t *testing.T) {
	buttons := []InlineBtn{
		{Text: "a", Unique: "k", Data: "1"},
		{Text: "b", Unique: "k", Data: "2"},
		{Text: "c", Unique: "k", Data: "3"},
		{Text: "d", Unique: "k", Data: "4"},
		{Text: "e", Unique: "k", Data: "5"},
	}
	markup := InlineButtonsNPerRow(buttons, 2)
	if len(markup.InlineKeyboard) != 3 {
		t.Fatalf("rows = %d, expected 3", len(markup.InlineKeyboard))
	}
	if len(markup.InlineKeyboard[0]) != 2 {
		t.Fatalf("first row = %d buttons, expected 2", len(markup.InlineKeyboard[0]))
	}
	if len(markup.InlineKeyboard[2]) != 1 {
		t.Fatalf("last row = %d buttons, expected 1", len(markup.InlineKeyboard[2]))
	}
}

func TestInlineButtonsOnePerRow(t *testing.T) {
	buttons := []InlineBtn{{Text: "a", Unique: "k"}, {Text: "b", Unique: "k"}}
	markup := InlineButtons(buttons)
	if len(markup.InlineKeyboard) != 2 {
		t.Fatalf("rows = %d, expected 2", len(markup.InlineKeyboard))
	}
}
