package calcr

import (
	"math"
	"strconv"
)

// Func is a function from reals to reals. Every function takes exactly one
// argument; there is no multi-argument call syntax. A function must be pure
// and must report arguments outside its domain with a DomainError.
type Func func(x float64) (float64, error)

// builtins is the set of functions known to every environment.
var builtins = map[string]Func{
	"sin":  pure(math.Sin),
	"cos":  pure(math.Cos),
	"tan":  pure(math.Tan),
	"atan": pure(math.Atan),
	"abs":  pure(math.Abs),
	"exp":  pure(math.Exp),

	"asin": checked("asin", within(-1, 1), math.Asin),
	"acos": checked("acos", within(-1, 1), math.Acos),
	"sqrt": checked("sqrt", func(x float64) bool { return x >= 0 }, math.Sqrt),
	"ln":   checked("ln", positive, math.Log),
	"log":  checked("log", positive, math.Log10),
}

// consts is the set of named constants known to every environment.
var consts = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"phi": math.Phi,
}

// pure wraps a total function into a Func.
func pure(f func(float64) float64) Func {
	return func(x float64) (float64, error) {
		return f(x), nil
	}
}

// checked wraps a partial function into a Func which reports a DomainError
// for arguments outside its domain.
func checked(name string, ok func(float64) bool, f func(float64) float64) Func {
	return func(x float64) (float64, error) {
		if !ok(x) {
			return 0, &DomainError{X: x, Func: name}
		}
		return f(x), nil
	}
}

// within builds a domain check for a closed interval.
func within(lo, hi float64) func(float64) bool {
	return func(x float64) bool {
		return lo <= x && x <= hi
	}
}

func positive(x float64) bool {
	return x > 0
}

// DomainError is an error returned when a function or operator is applied
// to an argument outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is a name identifying the function or operator.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}
