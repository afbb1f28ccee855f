package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/helpdesk-inc/helpdesk/internal/interfaces/cli/migrate"
	"github.com/helpdesk-inc/helpdesk/internal/interfaces/cli/server"
)

// @title						Helpdesk API
// @version					1.0
// @description				Ticket tracking API. Users register, obtain a bearer token and manage their own tickets.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and the access token.
func main() {
	rootCmd := &cobra.Command{
		Use:   "helpdesk",
		Short: "Helpdesk ticket tracking service",
		Long:  `Helpdesk serves the ticket tracking HTTP API and manages its database schema.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
