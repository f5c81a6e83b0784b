// Command jsonurl converts between JSONURL and JSON on stdin/stdout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jsonurl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jsonurl",
		Short:         "Convert between JSONURL and JSON",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newLoadCmd())
	root.AddCommand(newDumpCmd())
	return root
}
