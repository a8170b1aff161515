// Package app wires configuration, handlers, and the bot runtime.
package app

import (
	"log/slog"
	"time"

	corecmd "github.com/0x9900/sunfluxbot/core/cmd"
	coreconfig "github.com/0x9900/sunfluxbot/core/config"
	"github.com/0x9900/sunfluxbot/core/logger"
	tg "github.com/0x9900/sunfluxbot/core/telegram"
	"github.com/0x9900/sunfluxbot/core/telegram/commands"
	"github.com/0x9900/sunfluxbot/core/telegram/router"
	tgsender "github.com/0x9900/sunfluxbot/core/telegram/sender"
	"github.com/0x9900/sunfluxbot/core/telegram/state"
	"github.com/0x9900/sunfluxbot/internal/catalog"
	"github.com/0x9900/sunfluxbot/internal/handlers"
	"github.com/0x9900/sunfluxbot/internal/noaa"
	"github.com/0x9900/sunfluxbot/internal/terms"

	"github.com/pkg/errors"
	tele "gopkg.in/telebot.v4"
)

// App carries the bot's assembled components.
type App struct {
	cfg        *coreconfig.Config
	handlers   *handlers.Set
	registry   *tg.Registry
	dispatcher *tgsender.Dispatcher
}

// LoadConfig reads the first existing configuration file among paths.
func LoadConfig(paths ...string) (corecmd.ConfigCarrier, error) {
	cfg, err := coreconfig.Load(paths...)
	if err != nil {
		return nil, err
	}
	return &App{cfg: cfg}, nil
}

// Bootstrap initializes logging and builds all bot components.
func Bootstrap(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
	a, ok := carrier.(*App)
	if !ok {
		return nil, errors.Errorf("unexpected config carrier %T", carrier)
	}

	if err := logger.InitLogger(a.cfg); err != nil {
		return nil, errors.Wrap(err, "init logger")
	}

	dict, err := terms.Default()
	if err != nil {
		return nil, errors.Wrap(err, "load term definitions")
	}
	logger.Terms.Info("definitions loaded", slog.Int("terms", len(dict.Terms())))

	a.dispatcher = tgsender.NewDispatcher(tgsender.Options{})
	a.handlers = &handlers.Set{
		States:    state.NewMemoryManager(),
		NOAA:      noaa.NewClient(a.cfg.Cache.Dir),
		Terms:     dict,
		Errors:    a.dispatcher.ErrorCount,
		StartedAt: time.Now(),
	}
	a.registry = buildRegistry(a.handlers)

	// Typed text received mid-dialog abandons the dialog. Commands still
	// work, anything else gets the not-found reply.
	interrupt := dialogInterrupt(a.handlers, a.registry)
	state.RegisterHandler(handlers.StateBandsContinent, interrupt)
	state.RegisterHandler(handlers.StateBandsZone, interrupt)

	return a, nil
}

func dialogInterrupt(h *handlers.Set, reg *tg.Registry) func(c tele.Context) error {
	return func(c tele.Context) error {
		h.States.Clear(c.Sender().ID)
		if _, cmd, ok := reg.LookupCommand(c.Text()); ok && cmd.Handler != nil {
			return cmd.Handler(c)
		}
		return h.NotFound(c)
	}
}

// CoreConfig implements corecmd.ConfigCarrier.
func (a *App) CoreConfig() *coreconfig.Config {
	return a.cfg
}

// TelegramRunOptions assembles the bot runtime options.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	routes := router.CommandRoutes(a.registry, router.CommandRouteOptions{
		AdminID: a.cfg.Telegram.DeveloperID,
	})
	routes = append(routes, router.CallbackRoute(a.registry, router.CallbackOptions{}))
	routes = append(routes, router.TextRoute(a.handlers.States, a.registry, router.TextOptions{}))

	return tg.RunOptions{
		Config:      a.cfg,
		Registry:    a.registry,
		Dispatcher:  a.dispatcher,
		Middlewares: tg.DefaultMiddlewares(a.cfg, nil),
		Routes:      routes,
		OnError:     handlers.NewErrorReporter(a.cfg.Telegram.DeveloperID),
	}, nil
}

// buildRegistry maps every command and callback to its handler.
func buildRegistry(h *handlers.Set) *tg.Registry {
	reg := tg.NewRegistry()

	for _, cmd := range catalog.Commands() {
		res, _ := catalog.Lookup(cmd)
		reg.RegisterCommand(cmd, commands.Command{
			Handler:     h.Graph(cmd),
			Description: res.Caption,
		})
	}

	reg.RegisterCommand("/start", commands.Command{
		Handler:     h.Start,
		Description: "Greeting and a pointer to /help.",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     h.Help,
		Description: "This message.",
		Aliases:     []string{"command", "commands"},
	})
	reg.RegisterCommand("/bands", commands.Command{
		Handler:     h.Bands,
		Description: "Propagation by band and continent.",
		Aliases:     []string{"band"},
	})
	reg.RegisterCommand("/alerts", commands.Command{
		Handler:     h.Alerts,
		Description: "Solar activity alerts.",
		Aliases:     []string{"alert"},
	})
	reg.RegisterCommand("/prediction", commands.Command{
		Handler:     h.Prediction,
		Description: "Forecast Discussion.",
		Aliases:     []string{"predictions"},
	})
	reg.RegisterCommand("/info", commands.Command{
		Handler:     h.Info,
		Description: "Definition of certain terms.",
	})
	reg.RegisterCommand("/status", commands.Command{
		Handler:     h.Status,
		Description: "Runtime health report.",
		AdminOnly:   true,
		Hidden:      true,
	})

	_ = reg.RegisterCallback(handlers.CBContinent, h.ContinentChosen)
	_ = reg.RegisterCallback(handlers.CBZone, h.ZoneChosen)
	_ = reg.RegisterCallback(handlers.CBAllZones, h.AllZonesChosen)
	_ = reg.RegisterCallback(handlers.CBTerm, h.TermChosen)

	reg.SetTextFallback(h.UnknownText())
	reg.SetCallbackNotFound(h.UnknownCallback())

	return reg
}
