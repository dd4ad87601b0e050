package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/config"
	"github.com/mmcdole/marquee/internal/log"
	"github.com/mmcdole/marquee/internal/search"
	"github.com/mmcdole/marquee/internal/tmdb"
	"github.com/mmcdole/marquee/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app carries what every command needs after flags are parsed
type app struct {
	cfgFile  string
	logLevel string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "marquee",
		Short: "Search The Movie Database from your terminal",
		Long: `marquee is a terminal client for The Movie Database. It opens with
popular titles, lets you search, narrow the results and inspect a movie.

Set MARQUEE_TMDB_TOKEN (or TMDB_TOKEN) to your TMDB read access token.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initialize,
		RunE:              a.runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ~/.config/marquee/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newSearchCmd(a))
	return rootCmd
}

// initialize loads configuration and sets up the logger
func (a *app) initialize(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	a.cfg = cfg

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)
	a.logger = logger

	logger.Info("starting marquee", "version", Version, "command", cmd.Name())
	return nil
}

// newClient builds the movie database client from configuration
func (a *app) newClient() (*tmdb.Client, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := tmdb.NewClient(a.cfg.TMDB.BaseURL, a.cfg.TMDB.Token,
		tmdb.WithLanguage(a.cfg.TMDB.Language),
		tmdb.WithIncludeAdult(a.cfg.TMDB.IncludeAdult),
		tmdb.WithUserAgent("Marquee/"+Version),
		tmdb.WithLogger(a.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create TMDB client: %w", err)
	}
	return client, nil
}

// runTUI launches the interactive interface
func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	stdin := int(os.Stdin.Fd())
	if !term.IsTerminal(stdin) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("marquee needs an interactive terminal; use \"marquee search\" for scripts")
	}

	if !a.cfg.IsConfigured() {
		token, err := promptToken(stdin, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		a.cfg.TMDB.Token = token
	}

	client, err := a.newClient()
	if err != nil {
		return err
	}

	observer := tui.NewChannelObserver()
	notifier := tui.NewChannelNotifier()
	orchestrator := search.New(client, notifier,
		search.WithObserver(observer),
		search.WithLogger(a.logger),
		search.WithSettleDelay(a.cfg.UI.SettleDelay),
		search.WithInitialQuery(a.cfg.UI.InitialQuery),
	)

	model := tui.NewModel(orchestrator, observer, notifier, a.cfg.TMDB.ImageBaseURL)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)

	a.logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		a.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	a.logger.Info("shutting down")
	return nil
}
