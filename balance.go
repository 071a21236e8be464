package postfix

import "iter"

// Balanced reports whether every ) in expr closes an earlier unclosed ( and
// every ( is closed. Runes that are not tokens are ignored.
func Balanced(expr string) bool {
	return BalancedTokens(Tokens(expr))
}

// BalancedTokens reports whether the parentheses in a token sequence nest
// correctly. Tokenizer errors in the sequence are skipped.
func BalancedTokens(toks iter.Seq2[Token, error]) bool {
	_, ok := balance(toks)
	return ok
}

// balance checks parenthesis nesting. If the parentheses do not balance, the
// result is the first close with no open, or else the outermost open that is
// never closed.
func balance(toks iter.Seq2[Token, error]) (Token, bool) {
	var s Stack[Token]
	for tok, err := range toks {
		if err != nil {
			continue
		}
		switch tok.Kind {
		case LeftParen:
			s.Push(tok)
		case RightParen:
			if s.Empty() {
				return tok, false
			}
			s.Pop()
		}
	}
	if s.Empty() {
		return Token{}, true
	}
	for s.Len() > 1 {
		s.Pop()
	}
	return s.Pop(), false
}
