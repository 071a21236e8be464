package postfix_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/postfix"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("10 + (20 * 3) / 2")
	f.Add("(3+6)")
	f.Add("10 / (5 - 5)")
	f.Add(")(")
	f.Add("1 2")
	f.Fuzz(func(t *testing.T, s string) {
		_, err := postfix.Evaluate(s)
		if err == nil {
			return
		}
		var ie postfix.InputError
		if !errors.As(err, &ie) {
			t.Errorf("%q: error %#v is not an InputError", s, err)
		}
		if !postfix.Balanced(s) {
			var ue *postfix.UnbalancedParenthesesError
			if !errors.As(err, &ue) {
				t.Errorf("%q is unbalanced but got %v", s, err)
			}
		}
	})
}

func FuzzToPostfix(f *testing.F) {
	f.Add("1+2*3-4")
	f.Add("((1))")
	f.Add("1 × 2")
	f.Fuzz(func(t *testing.T, s string) {
		q, err := postfix.ToPostfix(s)
		if err != nil {
			return
		}
		// Parentheses only reach the output when an open one is never closed.
		for tok := range q.All() {
			if tok.Kind == postfix.RightParen {
				t.Errorf("%q: close paren in output %q", s, postfix.Format(q))
			}
			if tok.Kind == postfix.LeftParen && postfix.Balanced(s) {
				t.Errorf("%q: open paren in balanced output %q", s, postfix.Format(q))
			}
		}
	})
}
