package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/johanforsgren/gitcollection/internal/catalog"
	"github.com/johanforsgren/gitcollection/internal/config"
	"github.com/johanforsgren/gitcollection/internal/domain"
	"github.com/johanforsgren/gitcollection/internal/logger"
	"github.com/johanforsgren/gitcollection/internal/provider/github"
	"github.com/johanforsgren/gitcollection/internal/storage"
	"github.com/johanforsgren/gitcollection/internal/ui"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	v       = config.New()
)

var rootCmd = &cobra.Command{
	Use:   "gitcollection",
	Short: "A local catalog of GitHub repositories",
	Long: `GitCollection looks up GitHub repositories by owner/name and keeps
them in a catalog stored on this machine. Run it without a subcommand to
open the interactive catalog.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		session := ui.Session{
			Authenticated: app.cfg.GitHub.Token != "",
			StorageKey:    app.cfg.Storage.Key,
		}

		p := tea.NewProgram(ui.NewModel(app.service, session), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default <dir>/config.yaml)")
	flags.String("storage", config.BackendFile, "Storage backend: file or bolt")
	flags.String("dir", "", "Directory holding the catalog, config and log")
	flags.String("token", "", "GitHub token (defaults to GITHUB_TOKEN or GH_TOKEN)")
	flags.String("base-url", "", "GitHub API base URL")

	_ = v.BindPFlag("storage.backend", flags.Lookup("storage"))
	_ = v.BindPFlag("storage.dir", flags.Lookup("dir"))
	_ = v.BindPFlag("github.token", flags.Lookup("token"))
	_ = v.BindPFlag("github.base_url", flags.Lookup("base-url"))
}

type app struct {
	cfg     *config.Config
	kv      domain.KeyValueStore
	service *catalog.Service
}

// openApp loads configuration and wires storage, the GitHub lookup and the
// catalog service together.
func openApp() (*app, error) {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, err
	}

	if err := logger.Init(cfg.Log.File, cfg.Log.Enabled); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	kv, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	lookup, err := github.NewProvider(cfg.GitHub.Token, cfg.GitHub.BaseURL)
	if err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	store := storage.NewCatalogStore(kv, cfg.Storage.Key)
	logger.Log("Catalog slot %s on %s backend in %s", store.Key(), cfg.Storage.Backend, cfg.Storage.Dir)

	return &app{
		cfg:     cfg,
		kv:      kv,
		service: catalog.NewService(store, lookup),
	}, nil
}

func (a *app) Close() {
	if err := a.kv.Close(); err != nil {
		logger.LogError("CLOSE", "storage", err)
	}
	_ = logger.Close()
}
