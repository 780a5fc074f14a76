package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title Daily Journal API
// @version 1.0
// @description Personal journaling service: accounts, sessions and private dated entries.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey SessionCookie
// @in header
// @name Authorization
// @description Session token as "Bearer <token>", or the session cookie set by /auth/login.
func main() {
	root := &cobra.Command{
		Use:          "journal_backend",
		Short:        "Daily journal backend",
		SilenceUsage: true,
	}

	root.AddCommand(newServeCommand(), newMigrateCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
