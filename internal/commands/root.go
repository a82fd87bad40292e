package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"multiselect/internal/config"
	"multiselect/internal/domain"
	"multiselect/internal/ui"
)

// Version is set at build time.
var Version = "0.1.0"

var (
	configFlag      string
	logFlag         string
	noSearchFlag    bool
	noSelectAllFlag bool
	jsonFlag        bool
)

var rootCmd = &cobra.Command{
	Use:   "multiselect [label=value ...]",
	Short: "Pick several options from a searchable list",
	Long: "multiselect opens a full-screen list of options with fuzzy search and a Select All row,\n" +
		"then prints the chosen values. Options come from the config file or from label=value arguments\n" +
		"(prefix an argument with ! to disable it).",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "config file (default ./"+config.DefaultFileName+" or the user config dir)")
	rootCmd.Flags().StringVar(&logFlag, "log", "multiselect.log", "log file")
	rootCmd.Flags().BoolVar(&noSearchFlag, "no-search", false, "hide the search box")
	rootCmd.Flags().BoolVar(&noSelectAllFlag, "no-select-all", false, "hide the Select All row")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "print the selection as a JSON array")
}

func run(cmd *cobra.Command, args []string) error {
	// Set up logging
	logFile, err := os.OpenFile(logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	cfg, err := loadConfig(configFlag)
	if err != nil {
		return err
	}
	if err := applyArgs(cfg, args); err != nil {
		return err
	}
	if noSearchFlag {
		cfg.Panel.DisableSearch = true
	}
	if noSelectAllFlag {
		cfg.Panel.HasSelectAll = false
	}
	log.Printf("Starting with %d options, %d preselected", len(cfg.Options), len(cfg.Selected))

	model := ui.NewModel(cfg)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(os.Stderr),
	)
	model.SetProgram(p)

	if os.Getenv("MULTISELECT_E2E_TEST") == "1" {
		fmt.Fprintln(os.Stderr, "__READY__")
	}

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")

	if model.Cancelled() {
		return nil
	}
	return writeSelection(cmd.OutOrStdout(), model.Selection(), jsonFlag)
}

// loadConfig resolves the config file: an explicit path must exist, otherwise
// the working directory file wins over the user config dir.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.NewConfigServiceAt(path).LoadFromPath(path)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded config from %s", path)
		return cfg, nil
	}

	local := config.NewConfigServiceAt(config.DefaultFileName)
	cfg, err := local.LoadFromPath(config.DefaultFileName)
	if err == nil {
		log.Printf("Loaded config from %s", config.DefaultFileName)
		return cfg, nil
	}
	if !errors.Is(err, config.ErrNotFound) {
		return nil, err
	}

	return config.NewConfigService().Load()
}

// applyArgs appends the positional options to the configured ones
func applyArgs(cfg *config.Config, args []string) error {
	extra, err := parseOptions(args)
	if err != nil {
		return err
	}
	for _, opt := range extra {
		if domain.ContainsValue(cfg.Options, opt.Value) {
			return fmt.Errorf("duplicate option value %q", opt.Value)
		}
		cfg.Options = append(cfg.Options, opt)
	}
	if len(cfg.Options) == 0 {
		return errors.New("no options: pass label=value arguments or set options in the config file")
	}
	return nil
}

func writeSelection(w io.Writer, selection []domain.Option, asJSON bool) error {
	values := domain.Values(selection)
	if asJSON {
		return json.NewEncoder(w).Encode(values)
	}
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return fmt.Errorf("failed to write selection: %w", err)
		}
	}
	return nil
}
