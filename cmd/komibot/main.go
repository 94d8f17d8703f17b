package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/EchoNews615/komibot/internal/interfaces/cli/migrate"
	"github.com/EchoNews615/komibot/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "komibot",
		Short: "Komibot - community moderation tracking backend",
		Long:  `Komibot tracks members, message logs, punishments and ticket batches, derives escalation actions, and serves the moderation dashboard API.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
