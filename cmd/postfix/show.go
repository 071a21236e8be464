package main

import (
	"fmt"
	"io"

	"github.com/zephyrtronium/postfix"
)

// show writes each step of evaluating expr: the infix form, the parenthesis
// verdict, the postfix form, and the result or error. The result is the error
// that stopped evaluation, if any.
func show(w io.Writer, expr string, mode postfix.Mode) error {
	fmt.Fprintf(w, "Infix: %s\n", expr)
	if !postfix.Balanced(expr) {
		fmt.Fprintln(w, "Not valid parenthesis")
		_, err := postfix.Evaluate(expr, mode)
		return err
	}
	fmt.Fprintln(w, "Valid parenthesis")
	q, err := postfix.ToPostfix(expr, mode)
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(w, "Postfix: %s\n", postfix.Format(q))
	r, err := postfix.EvalPostfix(q)
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(w, "result = %d\n", r)
	return nil
}
