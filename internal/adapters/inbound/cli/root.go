package cli

import (
	"github.com/abdidvp/modkraft/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "modkraft",
		Short: "Find oversized Django modules and plan how to split them",
		Long:  "modkraft scans the models.py, admin.py and views.py of every app in a project, scores their structural complexity, and proposes a domain-based split with migration steps for the files that exceed the limits.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(logLevel)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", envOr("MODKRAFT_LOG_LEVEL", "warn"), "Log level (debug, info, warn, error)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newPlanCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute loads a .env from the working directory, if any, then runs the CLI.
func Execute() error {
	_ = godotenv.Load()
	return newRootCmd().Execute()
}
