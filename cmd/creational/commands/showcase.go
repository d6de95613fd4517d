package commands

import (
	"github.com/spf13/cobra"

	"github.com/dyluth/creational/internal/config"
	"github.com/dyluth/creational/internal/printer"
	"github.com/dyluth/creational/internal/showcase"
	"github.com/dyluth/creational/internal/trace"
)

// showcaseOptions are applied to every Runner the commands build
var showcaseOptions []showcase.Option

func newShowcaseCmd(name showcase.Name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(name),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowcases(cmd, name)
		},
	}
}

// runShowcases plays the built-in scenario, writing traces to the command's output
func runShowcases(cmd *cobra.Command, names ...showcase.Name) error {
	p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

	scenario, err := config.Default()
	if err != nil {
		return p.Error(
			"Built-in scenario is invalid",
			err.Error(),
			[]string{"Rebuild creational from a clean checkout"},
		)
	}

	runner := showcase.New(scenario, trace.New(p), showcaseOptions...)
	if _, err := runner.Run(names...); err != nil {
		return p.Error("Showcase failed", err.Error(), nil)
	}
	return nil
}
