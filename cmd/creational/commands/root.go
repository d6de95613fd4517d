package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dyluth/creational/internal/showcase"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd runs every showcase when called without a subcommand
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creational",
		Short: "Creational design pattern showcases",
		Long: `creational walks through three creational design patterns and traces
what each one does:

  Factory Method    notifications sent over SMS, Email and Push
  Singleton         one shared database connection per process
  Abstract Factory  a document editor built from one platform's widgets

Run without a subcommand to play all three in order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowcases(cmd, showcase.All()...)
		},
		// Enable strict flag parsing - unknown flags will cause an error
		FParseErrWhitelist: cobra.FParseErrWhitelist{},
		SilenceErrors:      true,
		SilenceUsage:       true,
	}

	cmd.AddCommand(
		newShowcaseCmd(showcase.FactoryMethod, "Send a notification through every channel"),
		newShowcaseCmd(showcase.Singleton, "Share one database connection between two handles"),
		newShowcaseCmd(showcase.AbstractFactory, "Build an editor for each platform"),
	)
	return cmd
}

// Execute runs the root command.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
