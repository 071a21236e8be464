package postfix

import (
	"errors"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []Token
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []Token{{Text: "0", Kind: Number, Pos: 1}}, 0},
		{"9876543210", []Token{{Text: "9876543210", Kind: Number, Pos: 1}}, 0},
		{"1 0", []Token{{Text: "1", Kind: Number, Pos: 1}, {Text: "0", Kind: Number, Pos: 3}}, 0},
		{"007", []Token{{Text: "007", Kind: Number, Pos: 1}}, 0},
		{"1+0", []Token{{Text: "1", Kind: Number, Pos: 1}, {Text: "+", Kind: Operator, Pos: 2}, {Text: "0", Kind: Number, Pos: 3}}, 0},
		{"1*0", []Token{{Text: "1", Kind: Number, Pos: 1}, {Text: "*", Kind: Operator, Pos: 2}, {Text: "0", Kind: Number, Pos: 3}}, 0},
		{"(1)", []Token{{Text: "(", Kind: LeftParen, Pos: 1}, {Text: "1", Kind: Number, Pos: 2}, {Text: ")", Kind: RightParen, Pos: 3}}, 0},
		// operators
		{"-1", []Token{{Text: "-", Kind: Operator, Pos: 1}, {Text: "1", Kind: Number, Pos: 2}}, 0},
		{"++", []Token{{Text: "+", Kind: Operator, Pos: 1}, {Text: "+", Kind: Operator, Pos: 2}}, 0},
		{"*/", []Token{{Text: "*", Kind: Operator, Pos: 1}, {Text: "/", Kind: Operator, Pos: 2}}, 0},
		// brackets
		{"()", []Token{{Text: "(", Kind: LeftParen, Pos: 1}, {Text: ")", Kind: RightParen, Pos: 2}}, 0},
		{")(", []Token{{Text: ")", Kind: RightParen, Pos: 1}, {Text: "(", Kind: LeftParen, Pos: 2}}, 0},
		// erroneous symbols
		{"$", []Token{{Pos: 1}}, 1},
		{"1.5", []Token{{Text: "1", Kind: Number, Pos: 1}, {Pos: 2}, {Text: "5", Kind: Number, Pos: 3}}, 1},
		{"a$", []Token{{Pos: 1}, {Pos: 2}}, 2},
		{"$0", []Token{{Pos: 1}, {Text: "0", Kind: Number, Pos: 2}}, 1},
		{"0$", []Token{{Text: "0", Kind: Number, Pos: 1}, {Pos: 2}}, 1},
		{"2^3", []Token{{Text: "2", Kind: Number, Pos: 1}, {Pos: 2}, {Text: "3", Kind: Number, Pos: 3}}, 1},
		{"[1]", []Token{{Pos: 1}, {Text: "1", Kind: Number, Pos: 2}, {Pos: 3}}, 2},
		{"×", []Token{{Pos: 1}}, 1},
	}

	for _, c := range cases {
		var got []Token
		errs := 0
		for tok, err := range Tokens(c.src) {
			got = append(got, tok)
			if err != nil {
				errs++
				var me *MalformedExpressionError
				if !errors.As(err, &me) {
					t.Errorf("scanning %q: error %#v is not *MalformedExpressionError", c.src, err)
				} else if me.Reason != UnknownSymbol {
					t.Errorf("scanning %q: wrong reason %v", c.src, me.Reason)
				}
			}
		}
		if len(got) != len(c.tokens) {
			t.Errorf("scanning %q: want %v, got %v", c.src, c.tokens, got)
			continue
		}
		for i, want := range c.tokens {
			if got[i] != want {
				t.Errorf("scanning %q: token %d: want %v, got %v", c.src, i, want, got[i])
			}
		}
		if errs != c.errs {
			t.Errorf("scanning %q: want %d errors, got %d", c.src, c.errs, errs)
		}
	}
}

func TestTokensRestartable(t *testing.T) {
	seq := Tokens("12 * (3 + 4)")
	var first, second []string
	for tok := range seq {
		first = append(first, tok.Text)
	}
	for tok := range seq {
		second = append(second, tok.Text)
	}
	if strings.Join(first, " ") != "12 * ( 3 + 4 )" {
		t.Errorf("wrong tokens: %q", first)
	}
	if strings.Join(first, " ") != strings.Join(second, " ") {
		t.Errorf("second iteration differs: %q vs %q", first, second)
	}
}

func TestTokensStop(t *testing.T) {
	n := 0
	for range Tokens("1 + 2 + 3") {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iteration did not stop: %d", n)
	}
}

func TestLexErrorMessage(t *testing.T) {
	var err error
	for _, e := range Tokens("10 % 3") {
		if e != nil {
			err = e
			break
		}
	}
	if err == nil {
		t.Fatal("no error")
	}
	if got, want := err.Error(), `4: malformed expression: unknown symbol "%"`; got != want {
		t.Errorf("wrong message: want %q, got %q", want, got)
	}
	var ie InputError
	if !errors.As(err, &ie) || ie.Pos() != 4 {
		t.Errorf("wrong position for %v", err)
	}
}
