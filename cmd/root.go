package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"wordfind/internal/config"
	"wordfind/internal/eventbus"
	"wordfind/internal/history"
	"wordfind/internal/logging"
	"wordfind/internal/lookup"
	"wordfind/internal/search"
	"wordfind/internal/ui"
)

// errLookupFailed marks a one-shot lookup that ended in the error state. The
// message has already been printed.
var errLookupFailed = errors.New("lookup failed")

// app carries what every command needs once flags and config are resolved
type app struct {
	configPath string
	logLevel   string
	baseURL    string

	configSvc config.ConfigService
	cfg       *config.Config
	logger    *slog.Logger
	bus       eventbus.EventBus
	closers   []io.Closer
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	a := &app{}
	root := newRootCmd(a)
	err := root.Execute()
	a.close()

	if err != nil {
		if !errors.Is(err, errLookupFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "wordfind [word]",
		Short: "Look up English words from the terminal",
		Long: `wordfind looks words up in the Free Dictionary API.

Usage:
  wordfind              Start the interactive dictionary
  wordfind <word>       Start it and look up <word> right away
  wordfind define word  Print the definition and exit

Words that name a subcommand (config, define, help, version) are read as
that command. Put them after -- to look them up: wordfind -- define`,
		Args: cobra.ArbitraryArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context(), strings.Join(args, " "))
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "",
		"Config file (default <user config dir>/wordfind/config.toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.baseURL, "base-url", "",
		"Dictionary service base URL")

	root.AddCommand(newDefineCmd(a), newConfigCmd(a), newVersionCmd())

	return root
}

// setup loads the config, applies flag overrides and starts logging
func (a *app) setup() error {
	cfg, err := config.NewConfigService(a.configPath).Load()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.baseURL != "" {
		cfg.Lookup.BaseURL = a.baseURL
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	a.cfg = cfg

	logger, closer := logging.NewLogger(cfg.Log)
	a.logger = logger
	a.closers = append(a.closers, closer)

	// The bus logs through the configured logger, so it starts once logging does
	a.bus = eventbus.New(logger)
	a.configSvc = config.NewConfigServiceWithBus(a.configPath, a.bus)

	logger.Debug("configuration loaded",
		slog.String("path", a.configSvc.Path()),
		slog.String("base_url", cfg.Lookup.BaseURL),
	)
	return nil
}

func (a *app) close() {
	if a.bus != nil {
		a.bus.Close()
	}
	for _, c := range a.closers {
		_ = c.Close()
	}
}

func (a *app) newClient() *lookup.Client {
	return lookup.NewClient(a.cfg.Lookup.BaseURL, a.logger,
		lookup.WithTimeout(a.cfg.Lookup.Timeout.Std()),
		lookup.WithRateLimit(a.cfg.Lookup.RateLimit),
	)
}

// runTUI runs the interactive dictionary until the user quits
func (a *app) runTUI(parent context.Context, initialWord string) error {
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	recorder := history.NewRecorder(a.bus, a.cfg.UI.HistorySize)

	model := ui.NewModel(ctx, ui.Options{
		Config:      a.cfg,
		History:     recorder,
		Logger:      a.logger,
		InitialWord: initialWord,
		SignalReady: os.Getenv("WORDFIND_E2E_TEST") == "1",
	})
	model.SetController(search.NewController(a.newClient(), model, a.bus, a.logger))

	var opts []tea.ProgramOption
	if a.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	// Redraw when history changes
	unsubscribe := a.bus.Subscribe(eventbus.EventLookupSucceeded, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	defer unsubscribe()

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	a.logger.Info("starting wordfind", slog.String("base_url", a.cfg.Lookup.BaseURL))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
