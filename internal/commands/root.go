package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Without a subcommand it behaves like
// "menu".
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rental-manager",
		Short: "Rental House Management System",
		Long: `Rental House Management System keeps track of properties, tenants and rent
collection for a single owner. All state lives in memory for the duration of
the session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMenu,
	}

	addMenuFlags(cmd)
	cmd.AddCommand(MenuCmd())

	return cmd
}
