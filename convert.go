package postfix

import (
	"iter"
	"strings"
)

// ToPostfix converts an infix expression to postfix order. The only error is
// a *MalformedExpressionError for a rune that cannot begin a token; in
// particular, parentheses are not checked for balance (use Balanced for that).
func ToPostfix(expr string, opts ...Option) (*Queue[Token], error) {
	return Convert(Tokens(expr), opts...)
}

// Convert converts a sequence of infix tokens to a queue of postfix tokens.
// Numbers pass straight to the output. Parentheses group operators on the
// operator stack and never reach the output, except that an ( with no
// matching ) is flushed to the output at the end, where EvalPostfix rejects
// it. A ) with no matching ( is dropped. The first tokenizer error in toks
// stops the conversion.
func Convert(toks iter.Seq2[Token, error], opts ...Option) (*Queue[Token], error) {
	p := newconvertctx(opts)
	out := new(Queue[Token])
	var ops Stack[Token]
	for tok, err := range toks {
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case Number:
			out.Enqueue(tok)
		case LeftParen:
			// The open paren is a sentinel. Only a close paren removes it.
			ops.Push(tok)
		case RightParen:
			for !ops.Empty() && ops.Peek().Kind != LeftParen {
				out.Enqueue(ops.Pop())
			}
			if !ops.Empty() {
				ops.Pop()
			}
		case Operator:
			prec := binop(tok.Text)
			for !ops.Empty() && ops.Peek().Kind != LeftParen && p.emits(binop(ops.Peek().Text), prec) {
				out.Enqueue(ops.Pop())
			}
			ops.Push(tok)
		default:
			panic("postfix: unknown token: " + tok.String())
		}
	}
	for !ops.Empty() {
		out.Enqueue(ops.Pop())
	}
	return out, nil
}

// emits returns whether the stacked operator top leaves the operator stack
// when the operator next arrives.
func (p convertctx) emits(top, next operator) bool {
	if p.mode == FlushAll {
		return true
	}
	return !next.moreBinding(top)
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. Unknown operators bind
// least of all.
func binop(text string) operator {
	switch text {
	case "+", "-":
		return operator{1, false}
	case "*", "/":
		return operator{5, false}
	default:
		return operator{}
	}
}

// Infix formats a token sequence as an infix expression with single spaces
// between tokens, e.g. "10 + (20 * 3) / 2". Tokenizer errors are skipped.
func Infix(toks iter.Seq2[Token, error]) string {
	var b strings.Builder
	var prev Kind
	for tok, err := range toks {
		if err != nil {
			continue
		}
		if b.Len() > 0 && prev != LeftParen && tok.Kind != RightParen {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
		prev = tok.Kind
	}
	return b.String()
}
