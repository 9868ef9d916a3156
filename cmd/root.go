package main

import (
	"os"

	"github.com/spf13/cobra"
)

const addrEnv = "REMINDER_ADDR"

func newRootCommand() *cobra.Command {
	var addrFlag string

	rootCmd := &cobra.Command{
		Use:           "reminder",
		Short:         "Deadline reminder daemon and control client",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&addrFlag, "addr", defaultAddr(), "Base URL of the reminder daemon control API")

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newPreferenceCommand(&addrFlag))
	rootCmd.AddCommand(newAlertsCommand(&addrFlag))
	rootCmd.AddCommand(newPollCommand(&addrFlag))
	rootCmd.AddCommand(newVisibleCommand(&addrFlag))
	rootCmd.AddCommand(newSessionCommand(&addrFlag))
	rootCmd.AddCommand(newStubCommand())

	return rootCmd
}

func defaultAddr() string {
	if addr := os.Getenv(addrEnv); addr != "" {
		return addr
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return "http://localhost:" + port
}
