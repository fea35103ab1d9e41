package calcr

import (
	"errors"
	"math"
	"strconv"
)

// ErrDivisionByZero is reported for a division whose divisor is exactly
// zero.
var ErrDivisionByZero = errors.New("division by zero")

// factEps is the tolerance used to decide whether a factorial operand is a
// whole number.
const factEps = 1e-9

// maxFact is the largest n with n! finite in float64.
const maxFact = 170

// Eval evaluates the equation against env. Evaluating an assignment stores
// the variable and yields the stored value; env is not modified if the
// right-hand side fails. Everything else reads env without modifying it, so
// re-evaluating the same equation yields the same result.
func (e *Expr) Eval(env *Env) (float64, error) {
	return e.n.eval(env)
}

func (n *node) eval(env *Env) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeConst:
		v, ok := env.Const(n.name)
		if !ok {
			return 0, &NameError{Name: n.name}
		}
		return v, nil
	case nodeVar:
		v, ok := env.Var(n.name)
		if !ok {
			return 0, &NameError{Name: n.name}
		}
		return v, nil
	case nodeCall:
		x, err := n.left.eval(env)
		if err != nil {
			return 0, err
		}
		return n.fn(x)
	case nodeNeg:
		v, err := n.left.eval(env)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case nodeFact:
		v, err := n.left.eval(env)
		if err != nil {
			return 0, err
		}
		return factorial(v)
	case nodeAssign:
		v, err := n.left.eval(env)
		if err != nil {
			return 0, err
		}
		if err := env.SetVar(n.name, v); err != nil {
			return 0, err
		}
		return v, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l, err := n.left.eval(env)
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval(env)
		if err != nil {
			return 0, err
		}
		switch n.kind {
		case nodeAdd:
			return l + r, nil
		case nodeSub:
			return l - r, nil
		case nodeMul:
			return l * r, nil
		case nodeDiv:
			if r == 0 {
				return 0, ErrDivisionByZero
			}
			return l / r, nil
		default:
			return power(l, r)
		}
	default:
		panic("calcr: invalid AST node " + n.kind.String())
	}
}

// power computes l^r under real-number semantics. A non-real result (a
// negative base with a non-integer exponent) surfaces as a DomainError
// rather than a silent NaN.
func power(l, r float64) (float64, error) {
	v := math.Pow(l, r)
	if math.IsNaN(v) {
		return 0, &DomainError{X: l, Func: "^"}
	}
	return v, nil
}

// factorial computes x! as the product 1*2*...*x. The operand must be
// finite, non-negative, and within factEps of a whole number. Operands
// above maxFact overflow float64 and yield +Inf without looping.
func factorial(x float64) (float64, error) {
	n := math.Round(x)
	if math.IsNaN(x) || math.IsInf(x, 0) || n < 0 || math.Abs(x-n) >= factEps {
		return 0, &FactorialError{X: x}
	}
	if n > maxFact {
		return math.Inf(1), nil
	}
	out := 1.0
	for i := 2.0; i <= n; i++ {
		out *= i
	}
	return out, nil
}

// FactorialError is an error returned when a factorial operand is not a
// non-negative whole number.
type FactorialError struct {
	// X is the invalid operand.
	X float64
}

func (err *FactorialError) Error() string {
	return "factorial of " + strconv.FormatFloat(err.X, 'g', -1, 64) +
		": operand must be a non-negative whole number"
}
