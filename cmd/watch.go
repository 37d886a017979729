package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/planimeter/internal/config"
	"github.com/conneroisu/planimeter/internal/logging"
	"github.com/conneroisu/planimeter/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:     "watch <manifest>",
	Aliases: []string{"w"},
	Short:   "Recompute manifest areas whenever the file changes",
	Long: `Watch a YAML manifest and recompute all shape areas on every change.

Rapid successive saves are debounced. A manifest that becomes invalid is
reported without stopping the watch, so fixing the file picks up again
automatically. Interrupt with Ctrl-C.

Examples:
  planimeter watch shapes.yml
  planimeter watch shapes.yml --debounce 100
  planimeter watch shapes.yml -f json`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().Int("debounce", 0, "debounce interval in milliseconds for rapid changes")
	viper.BindPFlag("watch.debounce_ms", watchCmd.Flags().Lookup("debounce"))
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(viper.GetString("log-level")),
		Format: "text",
		Output: cmd.ErrOrStderr(),
	})

	manifestPath := args[0]
	out := cmd.OutOrStdout()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initial computation before watching; a broken manifest is reported
	// but the watch still starts so edits can fix it
	if err := computeManifest(out, cfg, manifestPath); err != nil {
		logger.Error(ctx, err, "manifest computation failed", "manifest", manifestPath)
	}

	fw, err := watcher.NewFileWatcher(cfg.Debounce(), logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Stop()

	fw.AddFilter(watcher.YAMLFilter)
	fw.AddHandler(func(events []watcher.ChangeEvent) error {
		logger.Debug(ctx, "manifest changed", "events", len(events))
		if err := computeManifest(out, cfg, manifestPath); err != nil {
			logger.Error(ctx, err, "manifest computation failed", "manifest", manifestPath)
		}
		return nil
	})

	if err := fw.WatchFile(manifestPath); err != nil {
		return fmt.Errorf("failed to watch manifest: %w", err)
	}

	if err := fw.Start(ctx); err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}

	logger.Info(ctx, "watching manifest", "manifest", manifestPath, "debounce", cfg.Debounce().String())

	<-ctx.Done()
	return nil
}
