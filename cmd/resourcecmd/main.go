package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/renato0307/resourcecmd/internal/app"
	"github.com/renato0307/resourcecmd/internal/browser"
	"github.com/renato0307/resourcecmd/internal/config"
	"github.com/renato0307/resourcecmd/internal/logging"
	"github.com/renato0307/resourcecmd/internal/messages"
	"github.com/renato0307/resourcecmd/internal/resources"
	"github.com/renato0307/resourcecmd/internal/shortcut"
	"github.com/renato0307/resourcecmd/internal/ui"
)

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(cmd.String("config"))
	if err != nil {
		return nil, messages.WrapError(err, "failed to load config")
	}

	if cmd.IsSet("theme") {
		cfg.UI.Theme = cmd.String("theme")
	}
	if cmd.IsSet("catalog") {
		cfg.Catalog.Path = cmd.String("catalog")
	}
	if cmd.IsSet("log-file") {
		cfg.Log.File = cmd.String("log-file")
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.Log.Format = cmd.String("log-format")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setup loads config, starts logging and loads the catalog.
func setup(cmd *cli.Command) (*config.Config, *resources.Catalog, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	logCfg, err := cfg.Log.Logging()
	if err != nil {
		return nil, nil, err
	}
	if err := logging.Init(logCfg); err != nil {
		return nil, nil, messages.WrapError(err, "failed to initialize logging")
	}

	catalog := resources.Default()
	if cfg.Catalog.Path != "" {
		logging.Time("load catalog", func() {
			catalog, err = resources.Load(cfg.Catalog.Path)
		})
		if err != nil {
			return nil, nil, err
		}
	}
	logging.Info("starting", "resources", catalog.Len(), "theme", cfg.UI.Theme, "catalog", cfg.Catalog.Path)

	return cfg, catalog, nil
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, catalog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logging.Shutdown()

	model := app.NewModel(catalog, ui.GetTheme(cfg.UI.Theme),
		app.WithKeys(cfg.Keys.Keys()),
		app.WithActivatorTimeout(cfg.Activator.Timeout),
		app.WithNoticeDuration(cfg.Notices.Duration),
		app.WithOpener(browser.NewOpener()),
	)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func listResources(ctx context.Context, cmd *cli.Command) error {
	_, catalog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logging.Shutdown()

	w := cmd.Root().Writer
	for _, kind := range []resources.Kind{resources.KindHandbook, resources.KindSite} {
		for _, r := range catalog.ByKind(kind) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Prefix, r.Key, r.CommandLabel(), r.URL)
		}
	}
	return nil
}

func search(ctx context.Context, cmd *cli.Command) error {
	_, catalog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logging.Shutdown()

	input := strings.Join(cmd.Args().Slice(), " ")
	suggestions := shortcut.Match(input, catalog)
	if len(suggestions) == 0 {
		return fmt.Errorf("no resource matches %q; end the query with a prefix such as \"!b\"", input)
	}

	w := cmd.Root().Writer
	if cmd.Bool("print") {
		for _, s := range suggestions {
			fmt.Fprintln(w, s.URL)
		}
		return nil
	}

	result, err := browser.NewOpener().Open(suggestions[0].URL)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, result)
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "resourcecmd",
		Usage:  "Command palette with resource-scoped documentation search",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "$XDG_CONFIG_HOME/resourcecmd/config.yaml",
				Value:       config.DefaultPath(),
				Sources:     cli.EnvVars("RESOURCECMD_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "theme",
				Usage: "Theme to use (" + strings.Join(ui.AvailableThemes(), ", ") + ")",
			},
			&cli.StringFlag{
				Name:  "catalog",
				Usage: "Path to a YAML resource catalog replacing the built-in one",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Write logs to this file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format (text, json)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "resources",
				Usage:  "List the searchable resources",
				Action: listResources,
			},
			{
				Name:      "search",
				Usage:     "Search a resource without the TUI",
				ArgsUsage: "<query> !<letter>",
				Action:    search,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "print",
						Usage: "Print the search URL instead of opening it",
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
