// Package cli implements the ledger_audit maintenance command.
package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/warehouse_management_app/internal/core/ports/services"
	"github.com/SscSPs/warehouse_management_app/internal/core/services"
	"github.com/SscSPs/warehouse_management_app/internal/platform/config"
	"github.com/SscSPs/warehouse_management_app/internal/platform/storage"
	"github.com/spf13/cobra"
)

// ErrDriftFound is returned by verify when stored balances disagree with the movements.
var ErrDriftFound = errors.New("balance drift found")

var rootCmd = &cobra.Command{
	Use:   "ledger_audit",
	Short: "Maintenance tooling for the warehouse ledger",
	Long: `ledger_audit inspects the warehouse ledger configured through the same
environment as the server (STORAGE_DRIVER, PGSQL_URL, ...).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log progress to stderr")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// withServices loads configuration, opens storage and hands fn a service container.
func withServices(ctx context.Context, migrate bool, fn func(*portssvc.ServiceContainer) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	repos, closeStore, err := storage.Open(ctx, cfg, storage.Options{Migrate: migrate})
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(services.NewServiceContainer(repos))
}
