package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/midbel/cli"

	"github.com/zephyrtronium/postfix"
)

var evalCmd = cli.Command{
	Name:    "eval",
	Summary: "evaluate infix expressions",
	Handler: &EvalCmd{},
}

var postfixCmd = cli.Command{
	Name:    "postfix",
	Summary: "convert infix expressions to postfix",
	Handler: &PostfixCmd{},
}

var balancedCmd = cli.Command{
	Name:    "balanced",
	Summary: "check that parentheses in expressions balance",
	Handler: &BalancedCmd{},
}

var rpnCmd = cli.Command{
	Name:    "rpn",
	Summary: "evaluate postfix expressions such as \"10 20 +\"",
	Handler: &RPNCmd{},
}

var showCmd = cli.Command{
	Name:    "show",
	Summary: "report every step of evaluating infix expressions",
	Handler: &ShowCmd{},
}

type EvalCmd struct {
	Echo bool
	InputOptions
}

func (c *EvalCmd) Run(args []string) error {
	set := flag.NewFlagSet("eval", flag.ContinueOnError)
	set.BoolVar(&c.Echo, "echo", false, "print each expression before its result")
	c.register(set)
	if err := set.Parse(args); err != nil {
		return err
	}
	mode, err := c.mode()
	if err != nil {
		return err
	}
	exprs, err := c.expressions(set.Args())
	if err != nil {
		return err
	}
	return each(os.Stderr, exprs, func(expr string) error {
		r, err := postfix.Evaluate(expr, mode)
		if err != nil {
			return err
		}
		if c.Echo {
			fmt.Printf("%s : ", postfix.Infix(postfix.Tokens(expr)))
		}
		fmt.Println(r)
		return nil
	})
}

type PostfixCmd struct {
	InputOptions
}

func (c *PostfixCmd) Run(args []string) error {
	set := flag.NewFlagSet("postfix", flag.ContinueOnError)
	c.register(set)
	if err := set.Parse(args); err != nil {
		return err
	}
	mode, err := c.mode()
	if err != nil {
		return err
	}
	exprs, err := c.expressions(set.Args())
	if err != nil {
		return err
	}
	return each(os.Stderr, exprs, func(expr string) error {
		q, err := postfix.ToPostfix(expr, mode)
		if err != nil {
			return err
		}
		fmt.Println(postfix.Format(q))
		return nil
	})
}

type BalancedCmd struct {
	Quiet bool
	InputOptions
}

func (c *BalancedCmd) Run(args []string) error {
	set := flag.NewFlagSet("balanced", flag.ContinueOnError)
	set.BoolVar(&c.Quiet, "q", false, "print nothing; only set the exit status")
	c.register(set)
	if err := set.Parse(args); err != nil {
		return err
	}
	exprs, err := c.expressions(set.Args())
	if err != nil {
		return err
	}
	var failed bool
	for _, expr := range exprs {
		ok := postfix.Balanced(expr)
		if !ok {
			failed = true
		}
		if !c.Quiet {
			fmt.Println(strconv.FormatBool(ok))
		}
	}
	if failed {
		return errFail
	}
	return nil
}

type RPNCmd struct {
	InputOptions
}

func (c *RPNCmd) Run(args []string) error {
	set := flag.NewFlagSet("rpn", flag.ContinueOnError)
	c.register(set)
	if err := set.Parse(args); err != nil {
		return err
	}
	exprs, err := c.expressions(set.Args())
	if err != nil {
		return err
	}
	return each(os.Stderr, exprs, func(expr string) error {
		q, err := postfix.ParsePostfix(expr)
		if err != nil {
			return err
		}
		r, err := postfix.EvalPostfix(q)
		if err != nil {
			return err
		}
		fmt.Println(r)
		return nil
	})
}

type ShowCmd struct {
	InputOptions
}

func (c *ShowCmd) Run(args []string) error {
	set := flag.NewFlagSet("show", flag.ContinueOnError)
	c.register(set)
	if err := set.Parse(args); err != nil {
		return err
	}
	mode, err := c.mode()
	if err != nil {
		return err
	}
	exprs, err := c.expressions(set.Args())
	if err != nil {
		return err
	}
	var failed bool
	for _, expr := range exprs {
		if err := show(os.Stdout, expr, mode); err != nil {
			failed = true
		}
	}
	if failed {
		return errFail
	}
	return nil
}
