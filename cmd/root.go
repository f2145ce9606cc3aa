package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Johannes-Berggren/repodash/internal/config"
	"github.com/Johannes-Berggren/repodash/internal/logging"
	"github.com/Johannes-Berggren/repodash/internal/repos"
	"github.com/Johannes-Berggren/repodash/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "repodash",
	Short: "A terminal dashboard of repositories",
	Long: `repodash - a searchable, paged table of repositories in the terminal,
with default, compact and compact borderless display modes`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return run(cfg, tea.WithAltScreen())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.config/repodash/config.yaml)")
	flags.StringP("data", "d", "", "YAML dataset of repositories (default: built-in dataset)")
	flags.StringP("scan", "s", "", "list the git repositories in this directory")
	flags.StringP("mode", "m", "", "initial display mode: default, compact or compactBorderless")
	flags.Int("page-length", 0, "rows per page")
	flags.String("log-file", "", "write debug logs to this file")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("data.file", flags.Lookup("data"))
	_ = viper.BindPFlag("data.scan", flags.Lookup("scan"))
	_ = viper.BindPFlag("ui.display_mode", flags.Lookup("mode"))
	_ = viper.BindPFlag("table.page_length", flags.Lookup("page-length"))
	_ = viper.BindPFlag("logging.file", flags.Lookup("log-file"))
	_ = viper.BindPFlag("logging.level", flags.Lookup("log-level"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("REPODASH")
	// e.g. REPODASH_TABLE_PAGE_LENGTH for table.page_length
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// run starts the dashboard and makes sure the table is released however the
// program ends.
func run(cfg *config.Config, opts ...tea.ProgramOption) error {
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Close()

	source := repos.Open(cfg.Data.File, cfg.Data.Scan)
	// Fail before taking over the terminal when the dataset is unreadable.
	if _, err := source.Repositories(); err != nil {
		return err
	}

	controller := ui.NewController(source, ui.ControllerOptions{
		Paging:         cfg.Table.Paging,
		Searching:      cfg.Table.Searching,
		Ordering:       cfg.Table.Ordering,
		PageLength:     cfg.Table.PageLength,
		MaxColumnWidth: cfg.Table.MaxColumnWidth,
		DisplayMode:    cfg.DisplayMode(),
		Logger:         log.Logger,
	})
	defer func() {
		if controller.Mounted() {
			controller.Unmount()
		}
	}()

	log.Info("starting", "data", cfg.Data.File, "scan", cfg.Data.Scan, "mode", cfg.UI.DisplayMode)

	model := ui.NewModel(controller, ui.DashboardOptions{
		Title:       cfg.UI.Title,
		Placeholder: cfg.UI.Placeholder,
	})
	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
