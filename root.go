package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rileylov/reorderlist/internal/config"
	"github.com/rileylov/reorderlist/internal/dnd"
	"github.com/rileylov/reorderlist/internal/items"
	"github.com/rileylov/reorderlist/internal/logging"
	"github.com/rileylov/reorderlist/internal/report"
	"github.com/rileylov/reorderlist/internal/tui"
)

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"items":       "list.item_count",
	"item-height": "list.item_height",
	"items-file":  "list.items_file",
	"title":       "list.title",
	"log-level":   "log.level",
	"log-file":    "log.file",
	"output":      "output.format",
}

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "reorderlist",
		Short: "Reorder a list by dragging its rows",
		Long: `Reorderlist shows a list in the terminal whose rows can be picked up
with the mouse or the keyboard and dropped at a new position.

The final order is printed when the program exits.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := config.New(configPath)
			if err := bindFlags(v, cmd); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "config file (default $REORDERLIST_CONFIG or the user config dir)")
	flags.Int("items", 10, "number of generated items")
	flags.Int("item-height", 1, "terminal rows per item")
	flags.String("items-file", "", "TOML file with [[item]] entries")
	flags.String("title", "Reorderable List", "list title")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error, disabled)")
	flags.String("log-file", "", "log file (default under the user cache dir)")
	flags.StringP("output", "o", config.OutputTable, "final order format (table, yaml, none)")

	cmd.AddCommand(newVersionCommand())
	return cmd
}

// bindFlags binds the command flags to their config keys. Unset flags
// leave the config file and environment values in place.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func run(out io.Writer, cfg config.Config) error {
	logger, closer, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		NoColor: cfg.Log.NoColor,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	list, err := loadItems(cfg.List)
	if err != nil {
		return err
	}
	logger.Info().Int("items", len(list)).Int("item_height", cfg.List.ItemHeight).Msg("starting")

	m, err := tui.New(tui.Options{
		Title:      cfg.List.Title,
		Items:      list,
		ItemHeight: cfg.List.ItemHeight,
		Clipboard:  cfg.Clipboard.Enabled,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	defer m.Close()

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	logger.Info().Int("moves", m.Moves()).Msg("exiting")

	return writeOrder(out, cfg.Output.Format, report.Order{
		Title: cfg.List.Title,
		Moves: m.Moves(),
		Items: m.Items(),
	})
}

func loadItems(c config.ListConfig) ([]dnd.Item, error) {
	if c.ItemsFile != "" {
		return items.Load(c.ItemsFile)
	}
	return items.Generate(c.ItemCount), nil
}

func writeOrder(w io.Writer, format string, order report.Order) error {
	switch format {
	case config.OutputNone:
		return nil
	case config.OutputYAML:
		return report.WriteYAML(w, order)
	default:
		report.WriteTable(w, order.Items)
		return nil
	}
}
