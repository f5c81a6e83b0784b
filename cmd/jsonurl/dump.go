package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cdleonard/jsonurl-go/internal/jsonadapter"
	"github.com/cdleonard/jsonurl-go/pkg/jsonurl"
)

func newDumpCmd() *cobra.Command {
	var modes modeFlags

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Read JSON on stdin and write the equivalent JSONURL on stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}

			v, err := jsonadapter.FromJSON(data)
			if err != nil {
				return fmt.Errorf("parse JSON: %w", err)
			}

			text, err := jsonurl.Encode(v, modes.options()...)
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
	modes.register(cmd.Flags())
	return cmd
}
