package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/midbel/cli"
)

// errFail reports that a command already printed its errors.
var errFail = errors.New("fail")

var (
	summary = "postfix evaluates integer arithmetic expressions"
	help    = `Expressions use non-negative integers, the operators + - * /, and
parentheses. Each command reads expressions from its arguments, or one per
line from -in (default stdin) when there are none.`
)

func main() {
	log.SetFlags(0)
	var (
		set  = cli.NewFlagSet("postfix")
		root = prepare()
	)
	root.SetSummary(summary)
	root.SetHelp(help)
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
	}
	err := root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		if !errors.Is(err, errFail) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"eval"}, &evalCmd)
	root.Register([]string{"postfix"}, &postfixCmd)
	root.Register([]string{"balanced"}, &balancedCmd)
	root.Register([]string{"rpn"}, &rpnCmd)
	root.Register([]string{"show"}, &showCmd)
	root.Register([]string{"serve"}, &serveCmd)

	return root
}
