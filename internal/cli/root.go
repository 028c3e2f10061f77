// Package cli wires configuration, logging and the TUI behind cobra commands.
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/azmodal/internal/app"
	"github.com/riordanpawley/azmodal/internal/config"
	"github.com/spf13/cobra"
)

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configDir string
	label     string
	content   string
	noMouse   bool
}

// NewRootCommand builds the azmodal command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "azmodal",
		Short: "Terminal demo of a dismissible modal dialog",
		Long: `azmodal - a single modal dialog widget for the terminal.

Activate the trigger to open the dialog. Close it by clicking outside it,
pressing Esc, clicking the X, or clicking its content.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			return runTUI(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configDir, "config-dir", "", "directory containing .azmodal.{json,yaml,toml} (default: current directory)")
	flags.StringVar(&opts.label, "label", "", "trigger button label")
	flags.StringVar(&opts.content, "content", "", "dialog body text")
	flags.BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse support")

	cmd.AddCommand(newConfigCommand())
	return cmd
}

// loadConfig reads the config file and applies flags the user set
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configDir != "" {
		cfg, err = config.LoadConfig(o.configDir)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("label") {
		cfg.Modal.Label = o.label
	}
	if flags.Changed("content") {
		cfg.Modal.Content = o.content
	}
	if o.noMouse {
		cfg.UI.Mouse = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTUI(cfg *config.Config) error {
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	model, err := app.New(cfg, logger)
	if err != nil {
		return err
	}

	var programOpts []tea.ProgramOption
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	logger.Info("starting azmodal", "label", cfg.Modal.Label, "mouse", cfg.UI.Mouse)
	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
