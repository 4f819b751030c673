package cmd

import (
	"github.com/spf13/cobra"

	"github.com/datejp/dateinfo/cmd/lookup"
	"github.com/datejp/dateinfo/cmd/prefetch"
	"github.com/datejp/dateinfo/cmd/start"
	"github.com/datejp/dateinfo/frontend"
	"github.com/datejp/dateinfo/utils/log"
)

// flagPrintVersion set flag to show the current dateinfo version.
var flagPrintVersion bool

// Execute builds the command tree and executes commands.
func Execute() error {
	// c is the root command.
	c := &cobra.Command{
		Use: "dateinfo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagPrintVersion {
				log.Info("version: %v", frontend.Version)
				return nil
			}
			return cmd.Usage()
		},
	}

	c.AddCommand(start.Cmd)
	c.AddCommand(lookup.Cmd)
	c.AddCommand(prefetch.Cmd)
	c.Flags().BoolVarP(&flagPrintVersion, "version", "v", false, "show the version info and exit")

	return c.Execute()
}
