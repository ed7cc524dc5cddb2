package cli

import (
	"fmt"
	"runtime"

	"github.com/me/jobseq/internal/server"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the jobseq version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "jobseq %s (%s)\n", server.Version, runtime.Version())
			return nil
		},
	}
}
