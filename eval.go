package postfix

import (
	"fmt"
	"io"
	"strconv"
)

// EvalPostfix evaluates a queue of postfix tokens, consuming it. Numbers are
// pushed to a value stack; an operator pops its right operand, then its left
// operand, and pushes the result. Tokens with empty text are skipped.
//
// Structural problems produce a *MalformedExpressionError: a nil queue, an
// operator without two operands, a token that is not a number or operator,
// and a queue that leaves no value or several values. Dividing by zero
// produces a *DivisionByZeroError. On error, the rest of the queue is left
// unconsumed.
func EvalPostfix(q *Queue[Token]) (int, error) {
	if q == nil {
		return 0, &MalformedExpressionError{Reason: NullInput}
	}
	var vals Stack[int]
	for !q.Empty() {
		tok := q.Dequeue()
		if tok.Text == "" {
			continue
		}
		switch tok.Kind {
		case Number:
			v, err := number(tok)
			if err != nil {
				return 0, err
			}
			vals.Push(v)
		case Operator:
			if vals.Len() < 2 {
				return 0, &MalformedExpressionError{Col: tok.Pos, Text: tok.Text, Reason: MissingOperand}
			}
			r := vals.Pop()
			l := vals.Pop()
			v, err := apply(tok, l, r)
			if err != nil {
				return 0, err
			}
			vals.Push(v)
		default:
			return 0, &MalformedExpressionError{Col: tok.Pos, Text: tok.Text, Reason: InvalidToken}
		}
	}
	switch vals.Len() {
	case 0:
		return 0, &MalformedExpressionError{Reason: NoResult}
	case 1:
		return vals.Pop(), nil
	default:
		return 0, &MalformedExpressionError{Reason: ExtraOperands}
	}
}

// number parses a number token. The text must be decimal digits only.
func number(tok Token) (int, error) {
	for i := 0; i < len(tok.Text); i++ {
		if c := tok.Text[i]; c < '0' || c > '9' {
			return 0, &MalformedExpressionError{Col: tok.Pos, Text: tok.Text, Reason: InvalidToken}
		}
	}
	v, err := strconv.Atoi(tok.Text)
	if err != nil {
		// Too many digits for an int.
		return 0, &MalformedExpressionError{Col: tok.Pos, Text: tok.Text, Reason: InvalidToken}
	}
	return v, nil
}

// apply applies a binary operator token to its operands.
func apply(tok Token, l, r int) (int, error) {
	switch tok.Text {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return 0, &DivisionByZeroError{Col: tok.Pos, Dividend: l}
		}
		return l / r, nil
	default:
		return 0, &MalformedExpressionError{Col: tok.Pos, Text: tok.Text, Reason: InvalidToken}
	}
}

// ParsePostfix scans a postfix expression written as text, e.g. "10 20 +",
// into a queue suitable for EvalPostfix. Adjacent numbers must be separated
// by whitespace.
func ParsePostfix(src string) (*Queue[Token], error) {
	q := new(Queue[Token])
	for tok, err := range Tokens(src) {
		if err != nil {
			return nil, err
		}
		q.Enqueue(tok)
	}
	return q, nil
}

// Evaluate evaluates an infix expression. If the parentheses do not balance,
// the error is an *UnbalancedParenthesesError. Otherwise, the expression is
// converted to postfix with the given options and evaluated, and any error
// from either step is returned unchanged.
func Evaluate(expr string, opts ...Option) (int, error) {
	if tok, ok := balance(Tokens(expr)); !ok {
		return 0, &UnbalancedParenthesesError{Col: tok.Pos, Paren: tok.Text}
	}
	q, err := Convert(Tokens(expr), opts...)
	if err != nil {
		return 0, err
	}
	return EvalPostfix(q)
}

// Eval is a shortcut to read an entire infix expression from src and evaluate
// it. A nil src is a *MalformedExpressionError.
func Eval(src io.Reader, opts ...Option) (int, error) {
	if src == nil {
		return 0, &MalformedExpressionError{Reason: NullInput}
	}
	b, err := io.ReadAll(src)
	if err != nil {
		return 0, fmt.Errorf("reading expression: %w", err)
	}
	return Evaluate(string(b), opts...)
}
