package main

import (
	"bufio"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/zephyrtronium/postfix"
)

// InputOptions are the flags shared by commands that read expressions.
type InputOptions struct {
	In   string
	Mode string
}

func (o *InputOptions) register(set *flag.FlagSet) {
	set.StringVar(&o.In, "in", "", "input file, one expression per line (default stdin if no args given)")
	set.StringVar(&o.Mode, "mode", "precedence", `conversion mode, "precedence" or "flush"`)
}

func (o *InputOptions) mode() (postfix.Mode, error) {
	return postfix.ParseMode(o.Mode)
}

// expressions returns args if there are any, or else the non-blank lines of
// the input file or stdin.
func (o *InputOptions) expressions(args []string) ([]string, error) {
	if len(args) > 0 && o.In == "" {
		return args, nil
	}
	var r io.Reader = os.Stdin
	if o.In != "" && o.In != "-" {
		f, err := os.Open(o.In)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return readLines(r, args)
}

func readLines(r io.Reader, extra []string) ([]string, error) {
	var exprs []string
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		if line := strings.TrimSpace(scan.Text()); line != "" {
			exprs = append(exprs, line)
		}
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return append(exprs, extra...), nil
}

// each runs fn on every expression, printing failures to w. The result is
// errFail if any expression failed.
func each(w io.Writer, exprs []string, fn func(string) error) error {
	var failed bool
	for _, expr := range exprs {
		if err := fn(expr); err != nil {
			failed = true
			io.WriteString(w, expr+": "+err.Error()+"\n")
		}
	}
	if failed {
		return errFail
	}
	return nil
}
