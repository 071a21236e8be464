package postfix

import (
	"errors"
	"io"
	"iter"
	"strconv"
	"strings"
	"unicode"
)

// Token is a single lexical element of an expression.
type Token struct {
	// Text is the source text of the token. It is never empty for tokens
	// produced by the tokenizer.
	Text string
	// Kind is the token's category.
	Kind Kind
	// Pos is the column of the token's first rune, counting from 1. Tokens
	// built by hand may leave it zero.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// Kind is the category of a token.
type Kind int8

const (
	tokenNone Kind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// Number is a run of decimal digits.
	Number
	// Operator is one of the runes in Operators.
	Operator
	// LeftParen is (.
	LeftParen
	// RightParen is ).
	RightParen
)

func (k Kind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

var operstrs = []string{"+", "-", "*", "/"}

// Tokens returns the tokens of expr in order. The sequence is lazy and may be
// ranged over any number of times; each iteration scans expr from the start.
//
// A rune that cannot begin a token yields a zero Token with a
// *MalformedExpressionError, and scanning continues with the next rune.
// Whitespace separates tokens and is never yielded.
func Tokens(expr string) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		scan := lex(strings.NewReader(expr))
		for {
			tok, err := scan.next()
			if err == nil && tok.Kind == tokenEOF {
				return
			}
			if !yield(tok, err) {
				return
			}
			if err != nil && !errors.As(err, new(*MalformedExpressionError)) {
				// Read errors don't advance the scanner.
				return
			}
		}
	}
}

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the number of runes read so far.
	col int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input. At the end of the input, the
// result is an EOF token with a nil error.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Token{Kind: tokenEOF, Pos: l.col + 1}, nil
			}
			return Token{Pos: l.col}, err
		}
		pos := l.col
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return Token{Pos: pos}, err
			}
			return Token{Text: l.buf.String(), Kind: Number, Pos: pos}, nil
		case r == '(':
			return Token{Text: "(", Kind: LeftParen, Pos: pos}, nil
		case r == ')':
			return Token{Text: ")", Kind: RightParen, Pos: pos}, nil
		default:
			if k := strings.IndexRune(Operators, r); k >= 0 {
				return Token{Text: operstrs[k], Kind: Operator, Pos: pos}, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return Token{Pos: pos}, &MalformedExpressionError{
				Col:    pos,
				Text:   l.buf.String(),
				Reason: UnknownSymbol,
			}
		}
	}
}

// scanNum scans a maximal run of ASCII digits into the buffer.
func (l *lexer) scanNum() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if r < '0' || r > '9' {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}
