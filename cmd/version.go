package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var build = "dev"

// SetBuild sets the build string from main
func SetBuild(b string) {
	build = b
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wordfind %s\n", build)
		},
	}
}
