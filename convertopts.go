package postfix

import "strconv"

// Option is an option for conversion to postfix.
type Option interface {
	convertOption(convertctx) convertctx
}

// convertctx holds the settings for one conversion.
type convertctx struct {
	// mode selects how operators leave the operator stack.
	mode Mode
}

// Mode selects how the converter decides which stacked operators to emit when
// it reads a new operator. A Mode is an Option.
type Mode int8

const (
	// Precedence emits stacked operators that bind at least as tightly as the
	// new one, so * and / group before + and -, and operators of equal
	// precedence group left to right. This is the default.
	Precedence Mode = iota
	// FlushAll emits every stacked operator down to the nearest open
	// parenthesis regardless of precedence. "10 + 20 * 5" becomes
	// "10 20 + 5 *", which evaluates strictly left to right.
	FlushAll
)

func (m Mode) convertOption(p convertctx) convertctx {
	p.mode = m
	return p
}

func (m Mode) String() string {
	switch m {
	case Precedence:
		return "precedence"
	case FlushAll:
		return "flush"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMode gets the mode named by s, which is "precedence" or "flush". The
// empty string selects Precedence.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "precedence":
		return Precedence, nil
	case "flush", "flush-all":
		return FlushAll, nil
	default:
		return 0, &ModeError{Name: s}
	}
}

// ModeError is an error naming an unknown conversion mode.
type ModeError struct {
	Name string
}

func (err *ModeError) Error() string {
	return "unknown conversion mode " + strconv.Quote(err.Name)
}

func newconvertctx(opts []Option) convertctx {
	var p convertctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.convertOption(p)
	}
	return p
}
