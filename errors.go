package postfix

import "strconv"

// Reason is the structural defect behind a MalformedExpressionError.
type Reason int8

const (
	_ Reason = iota
	// UnknownSymbol is a rune that cannot begin any token.
	UnknownSymbol
	// MissingOperand is an operator with fewer than two values to apply to.
	MissingOperand
	// InvalidToken is a postfix token that is neither a number nor an
	// operator, or a number too large for an int.
	InvalidToken
	// NoResult is a postfix expression that leaves no value.
	NoResult
	// ExtraOperands is a postfix expression that leaves more than one value.
	ExtraOperands
	// NullInput is a nil queue or reader.
	NullInput
)

func (r Reason) String() string {
	switch r {
	case UnknownSymbol:
		return "unknown symbol"
	case MissingOperand:
		return "missing operand"
	case InvalidToken:
		return "invalid token"
	case NoResult:
		return "no result"
	case ExtraOperands:
		return "extra operands"
	case NullInput:
		return "null input"
	default:
		return "Reason(" + strconv.Itoa(int(r)) + ")"
	}
}

// MalformedExpressionError indicates structurally invalid input. It
// implements InputError.
type MalformedExpressionError struct {
	// Col is the position of the token that caused the error, or 0 if no
	// single token is responsible.
	Col int
	// Text is the offending token or rune, if any.
	Text string
	// Reason is the kind of defect.
	Reason Reason
}

func (err *MalformedExpressionError) Error() string {
	msg := "malformed expression: " + err.Reason.String()
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	return errpos(err.Col, msg)
}

func (err *MalformedExpressionError) Pos() int {
	return err.Col
}

// UnbalancedParenthesesError indicates a parenthesis with no partner. It
// implements InputError.
type UnbalancedParenthesesError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Paren is the unmatched parenthesis.
	Paren string
}

func (err *UnbalancedParenthesesError) Error() string {
	if err.Paren == "(" {
		return errpos(err.Col, "unbalanced parentheses: open ( with no close")
	}
	return errpos(err.Col, "unbalanced parentheses: close ) with no open")
}

func (err *UnbalancedParenthesesError) Pos() int {
	return err.Col
}

// DivisionByZeroError indicates a / whose right operand is zero. It
// implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
	// Dividend is the left operand.
	Dividend int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero: "+strconv.Itoa(err.Dividend)+" / 0")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the column of the token that caused the error, counting
	// runes from 1, or 0 if the error has no single position.
	Pos() int
}

var (
	_ InputError = (*MalformedExpressionError)(nil)
	_ InputError = (*UnbalancedParenthesesError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
)
