package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"rental-manager/internal/config"
	"rental-manager/internal/ledger"
	"rental-manager/internal/logger"
	"rental-manager/internal/menu"
	"rental-manager/internal/rental"
)

// MenuCmd runs the interactive rental management menu
func MenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive rental management menu",
		RunE:  runMenu,
	}

	addMenuFlags(cmd)

	return cmd
}

func addMenuFlags(cmd *cobra.Command) {
	cmd.Flags().String("owner", "", "Owner name (overrides OWNER_NAME)")
	cmd.Flags().String("log-level", "", "Log level (overrides LOG_LEVEL)")
	cmd.Flags().Bool("ledger", false, "Print the session ledger on exit")
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if owner, _ := cmd.Flags().GetString("owner"); owner != "" {
		cfg.Owner.Name = owner
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logger.Level = level
	}
	if showLedger, _ := cmd.Flags().GetBool("ledger"); showLedger {
		cfg.Ledger.Report = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)

	return Session(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), log)
}

// Session runs one menu session for the configured owner against a fresh
// in-memory ledger.
func Session(cfg *config.Config, in io.Reader, out io.Writer, log *logger.Logger) error {
	db, err := ledger.Open()
	if err != nil {
		return fmt.Errorf("failed to open session ledger: %w", err)
	}
	defer func() {
		if err := ledger.Close(db); err != nil {
			log.WithError(err).Error("Failed to close session ledger")
		}
	}()
	repo := ledger.NewRepository(db)

	owner := rental.NewOwner(cfg.Owner.Name)
	if err := menu.NewConsole(owner, in, out, repo, log).Run(); err != nil {
		return fmt.Errorf("menu aborted: %w", err)
	}

	if summary, err := repo.Summary(); err == nil {
		log.WithField("payments", summary.Payments).
			WithField("collected", summary.TotalCollected.String()).
			WithField("lease_events", summary.LeaseEvents).
			Info("Session finished")
	}

	if cfg.Ledger.Report {
		if err := ledger.WriteHistory(out, repo); err != nil {
			return fmt.Errorf("failed to print session ledger: %w", err)
		}
	}

	return nil
}
