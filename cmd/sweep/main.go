// Command sweep plans a week of household cleaning.
//
// Usage:
//
//	sweep serve                  # web board on :8080
//	sweep add --name Vacuum --room "living room" --day monday
//	sweep list --room kitchen
//	sweep done <id>
//	sweep rm <id>
//	sweep summary
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"git.sr.ht/~jakintosh/sweep/internal/config"
	"git.sr.ht/~jakintosh/sweep/internal/domain"
	"git.sr.ht/~jakintosh/sweep/internal/logging"
	"git.sr.ht/~jakintosh/sweep/internal/schedule"
	"git.sr.ht/~jakintosh/sweep/internal/store"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// globalFlags override whatever config file and environment say.
type globalFlags struct {
	configPath string
	dbPath     string
	backend    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "sweep",
		Short:         "Plan a week of household cleaning",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file (env: SWEEP_*)")
	root.PersistentFlags().StringVar(&flags.dbPath, "db", "", "SQLite database file (env: SWEEP_STORAGE_PATH)")
	root.PersistentFlags().StringVar(&flags.backend, "backend", "", "storage backend: sqlite or memory (env: SWEEP_STORAGE_BACKEND)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (env: SWEEP_LOG_LEVEL)")

	root.AddCommand(
		newServeCmd(flags),
		newListCmd(flags),
		newAddCmd(flags),
		newDoneCmd(flags),
		newRmCmd(flags),
		newSummaryCmd(flags),
	)
	return root
}

// app is what every subcommand works against.
type app struct {
	cfg   config.Config
	log   *zap.Logger
	store *schedule.Store
	close func()
}

func openApp(cmd *cobra.Command, flags *globalFlags) (*app, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("db") {
		cfg.Storage.Path = flags.dbPath
	}
	if cmd.Flags().Changed("backend") {
		cfg.Storage.Backend = flags.backend
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	slot, closeSlot, err := openSlot(cfg.Storage)
	if err != nil {
		return nil, err
	}

	st := schedule.New(slot,
		schedule.WithKey(cfg.Storage.Key),
		schedule.WithLogger(log.Named("schedule")),
	)
	st.Load()

	return &app{
		cfg:   cfg,
		log:   log,
		store: st,
		close: closer(log, closeSlot),
	}, nil
}

// closer releases the slot and flushes the logger, logging a failed close.
func closer(log *zap.Logger, closeSlot func() error) func() {
	return func() {
		if err := closeSlot(); err != nil {
			log.Error("failed to close store", zap.Error(err))
		}
		_ = log.Sync()
	}
}

func openSlot(cfg config.StorageConfig) (domain.Slot, func() error, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return store.NewMemorySlot(), func() error { return nil }, nil
	case config.BackendSQLite:
		slot, err := store.NewSQLiteSlot(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize store: %w", err)
		}
		return slot, slot.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func printTask(w io.Writer, t domain.CleaningTask) {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	fmt.Fprintf(w, "[%s] %s  %-9s  %-11s  %s\n", mark, t.ID, t.Day.Label(), t.Room.Label(), t.Name)
}
