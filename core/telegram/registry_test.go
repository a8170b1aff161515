package telegram

import (
	"testing"

	"github.com/0x9900/sunfluxbot/core/telegram/commands"

	tele "gopkg.in/telebot.v4"
)

func nopHandler(tele.Context) error { return nil }

func TestLookupCommandStripsMentionAndArgs(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/flux", commands.Command{Handler: nopHandler, Description: "10cm flux"})

	cases := []string{"/flux", "/flux@SunFluxBot", "/flux@SunFluxBot extra", "/flux now", "flux"}
	for _, in := range cases {
		key, _, ok := reg.LookupCommand(in)
		if !ok || key != "/flux" {
			t.Fatalf("LookupCommand(%q) = %q, %v", in, key, ok)
		}
	}

	if _, _, ok := reg.LookupCommand("/unknown"); ok {
		t.Fatal("unexpected match for unknown command")
	}
	if _, _, ok := reg.LookupCommand("   "); ok {
		t.Fatal("unexpected match for blank text")
	}
}

func TestLookupCommandAliases(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/forecast", commands.Command{
		Handler:     nopHandler,
		Description: "3 day forecast",
		Aliases:     []string{"outlook"},
	})

	key, _, ok := reg.LookupCommand("/outlook")
	if !ok || key != "/forecast" {
		t.Fatalf("alias lookup = %q, %v", key, ok)
	}
}

func TestListCommandsFiltersHiddenAndStripsSlash(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/flux", commands.Command{Handler: nopHandler, Description: "10cm flux"})
	reg.RegisterCommand("/status", commands.Command{Handler: nopHandler, Description: "bot status", AdminOnly: true, Hidden: true})

	list := reg.ListCommands(true)
	if len(list) != 1 {
		t.Fatalf("visible commands = %d, want 1", len(list))
	}
	if list[0].Text != "flux" {
		t.Fatalf("command text = %q, want slash stripped", list[0].Text)
	}

	all := reg.ListCommands(false)
	if len(all) != 2 {
		t.Fatalf("all commands = %d, want 2", len(all))
	}
}

func TestRegisterCommandRejectsInvalid(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("flux", commands.Command{Handler: nopHandler, Description: "no slash"})
	reg.RegisterCommand("/nohandler", commands.Command{Description: "nil handler"})
	if len(reg.Commands()) != 0 {
		t.Fatalf("registered %d invalid commands", len(reg.Commands()))
	}
}

func TestRegisterCallbackDuplicate(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterCallback("bands_zone", nopHandler); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if err := reg.RegisterCallback("bands_zone", nopHandler); err == nil {
		t.Fatal("duplicate registration should fail")
	}
	if _, ok := reg.GetCallback("bands_zone"); !ok {
		t.Fatal("callback lookup failed")
	}
}
