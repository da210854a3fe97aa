package cli

import (
	"github.com/spf13/cobra"
)

func newServeCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:           "serve",
		Short:         "Run the HTTP API and the scheduled coverage report",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return deps.Serve(cmd.Context())
		},
	}
}
