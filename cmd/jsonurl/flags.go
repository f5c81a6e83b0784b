package main

import (
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/cdleonard/jsonurl-go/pkg/jsonurl"
)

// modeFlags holds the --implied-list/--implied-dict/--address-query-friendly
// flags shared by both subcommands, and translates them into codec Options.
type modeFlags struct {
	impliedList bool
	impliedDict bool
	aqf         bool
}

func (f *modeFlags) register(flags *pflag.FlagSet) {
	flags.BoolVarP(&f.impliedList, "implied-list", "l", false, "treat the top level as the inside of a list")
	flags.BoolVarP(&f.impliedDict, "implied-dict", "d", false, "treat the top level as the inside of a mapping")
	flags.BoolVarP(&f.aqf, "address-query-friendly", "a", false, "use AQF (!-escape) quoting instead of '-quoting")
}

func (f *modeFlags) options() []jsonurl.Option {
	var opts []jsonurl.Option
	if f.impliedList {
		opts = append(opts, jsonurl.WithImpliedList())
	}
	if f.impliedDict {
		opts = append(opts, jsonurl.WithImpliedDict())
	}
	if f.aqf {
		opts = append(opts, jsonurl.WithAQF())
	}
	return opts
}

// defaultIndent picks 2 when stdout is an interactive terminal (so ad
// hoc runs read nicely) and 0 (compact) otherwise, e.g. when piped into
// another program. An explicit --indent flag always overrides this.
func defaultIndent() int {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return 2
	}
	return 0
}

func indentString(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
