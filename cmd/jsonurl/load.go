package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cdleonard/jsonurl-go/internal/jsonadapter"
	"github.com/cdleonard/jsonurl-go/pkg/jsonurl"
)

func newLoadCmd() *cobra.Command {
	var modes modeFlags
	indent := -1 // sentinel: not set by the user

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Read JSONURL on stdin and write the equivalent JSON on stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			text := strings.TrimSuffix(string(data), "\n")
			text = strings.TrimSuffix(text, "\r")

			v, err := jsonurl.Decode(text, modes.options()...)
			if err != nil {
				return err
			}

			n := indent
			if n < 0 {
				n = defaultIndent()
			}
			out, err := jsonadapter.ToJSON(v, indentString(n))
			if err != nil {
				return fmt.Errorf("render JSON: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}
	modes.register(cmd.Flags())
	cmd.Flags().IntVar(&indent, "indent", -1, "JSON indent width (default: 2 on a terminal, compact otherwise)")
	return cmd
}
