package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"onboard/internal/client"
)

// Color helpers for CLI output.
var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

func successMsg(msg string) string { return green("✔ " + msg) }
func errorMsg(msg string) string   { return red("✘ " + msg) }

var serverURL string

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "onboard",
		Short: "Onboarding wizard, admin editor and user table",
		Long: `onboard is the terminal client for the onboarding service.

EXAMPLES:
  onboard wizard                 # Walk through the onboarding steps
  onboard admin                  # Configure which fields appear on steps 2-3
  onboard users                  # Review submitted users
  onboard users --search alice   # Filter the table
  onboard users --sort email     # Sort by a column`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", client.DefaultBaseURL, "Base URL of the onboarding API")

	rootCmd.AddCommand(newWizardCommand())
	rootCmd.AddCommand(newAdminCommand())
	rootCmd.AddCommand(newUsersCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMsg(err.Error()))
		os.Exit(1)
	}
}

func apiClient() *client.Client {
	return client.New(serverURL)
}
