package calcr

import "strconv"

// TokenError is an error indicating a token that cannot appear where the
// parser found it. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the text of the offending token.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an unmatched parenthesis or absolute
// value delimiter. It implements InputError.
type BracketError struct {
	// Col is the position at which the mismatch was detected.
	Col int
	// Left is the opening delimiter, or the empty string if a closing
	// delimiter appeared with no opening one.
	Left string
	// Right is the closing delimiter, or the empty string if the input
	// ended with Left still open.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close "+strconv.Quote(err.Right)+" with no open")
	}
	if err.Right == "" {
		return errpos(err.Col, "open "+strconv.Quote(err.Left)+" with no close")
	}
	return errpos(err.Col, "mismatched "+err.Left+"equation"+err.Right)
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty equation or
// subexpression. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string at
	// the end of the input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no equation")
		}
		return errpos(err.Col, "no equation at end")
	}
	return errpos(err.Col, "no equation up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function used without an argument. It
// implements InputError.
type CallError struct {
	// Col is the position at which the argument should have started.
	Col int
	// Func is the function name.
	Func string
}

func (err *CallError) Error() string {
	return errpos(err.Col, "missing argument to "+err.Func)
}

func (err *CallError) Pos() int {
	return err.Col
}

// NameError is an error indicating an identifier which is not a constant,
// function, or defined variable. It implements InputError.
type NameError struct {
	// Col is the position of the name, or 0 when the lookup failed during
	// evaluation rather than parsing.
	Col int
	// Name is the unknown name.
	Name string
}

func (err *NameError) Error() string {
	msg := "unknown name " + strconv.Quote(err.Name)
	if err.Name == "exit" {
		msg += ` (did you mean "quit"?)`
	}
	if err.Col == 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *NameError) Pos() int {
	return err.Col
}

// AssignError is an error indicating an assignment to a builtin constant or
// function name. It implements InputError.
type AssignError struct {
	// Col is the position of the assignment target, or 0 when the
	// assignment was made through Env.SetVar rather than parsed.
	Col int
	// Name is the builtin name.
	Name string
}

func (err *AssignError) Error() string {
	msg := "cannot assign to builtin " + strconv.Quote(err.Name)
	if err.Col == 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *AssignError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to
	// and including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*AssignError)(nil)
)
