package app

import (
	"testing"

	"github.com/0x9900/sunfluxbot/core/telegram/state"
	"github.com/0x9900/sunfluxbot/internal/catalog"
	"github.com/0x9900/sunfluxbot/internal/handlers"
	"github.com/0x9900/sunfluxbot/internal/terms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandlers(t *testing.T) *handlers.Set {
	t.Helper()
	dict, err := terms.Default()
	require.NoError(t, err)
	return &handlers.Set{
		States: state.NewMemoryManager(),
		Terms:  dict,
	}
}

func TestBuildRegistryCommands(t *testing.T) {
	reg := buildRegistry(testHandlers(t))

	for _, cmd := range catalog.Commands() {
		_, _, ok := reg.LookupCommand(cmd)
		assert.True(t, ok, "catalog command %s", cmd)
	}
	for _, cmd := range []string{"/start", "/help", "/bands", "/alerts", "/prediction", "/info", "/status"} {
		_, _, ok := reg.LookupCommand(cmd)
		assert.True(t, ok, "builtin command %s", cmd)
	}

	// Aliases resolve to their canonical command.
	for alias, want := range map[string]string{
		"/band":        "/bands",
		"/alert":       "/alerts",
		"/predictions": "/prediction",
		"/command":     "/help",
		"/commands":    "/help",
	} {
		key, _, ok := reg.LookupCommand(alias)
		require.True(t, ok, "alias %s", alias)
		assert.Equal(t, want, key)
	}
}

func TestBuildRegistryHidesStatus(t *testing.T) {
	reg := buildRegistry(testHandlers(t))
	for _, cmd := range reg.ListCommands(true) {
		assert.NotEqual(t, "status", cmd.Text)
	}
}

func TestBuildRegistryCallbacks(t *testing.T) {
	reg := buildRegistry(testHandlers(t))
	for _, key := range []string{
		handlers.CBContinent,
		handlers.CBZone,
		handlers.CBAllZones,
		handlers.CBTerm,
	} {
		_, ok := reg.GetCallback(key)
		assert.True(t, ok, "callback %s", key)
	}
	assert.NotNil(t, reg.TextFallback())
	assert.NotNil(t, reg.CallbackNotFound())
}
