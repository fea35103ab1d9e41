package calcr_test

import (
	"errors"
	"math"
	"testing"

	"github.com/opp11/calcr"
)

func TestFuncs(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"sin(0)", 0},
		{"cos(0)", 1},
		{"tan(0)", 0},
		{"asin(1)", math.Pi / 2},
		{"acos(1)", 0},
		{"atan(0)", 0},
		{"abs(-3)", 3},
		{"exp(0)", 1},
		{"exp(1)", math.E},
		{"sqrt(9)", 3},
		{"ln(1)", 0},
		{"log(10)", 1},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			r, err := calcr.NewEnv().EvalString(c.src)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if !near(r, c.want) {
				t.Errorf("%q = %g, want %g", c.src, r, c.want)
			}
		})
	}
}

func TestFuncDomains(t *testing.T) {
	cases := []struct {
		src string
		fn  string
	}{
		{"asin(1.5)", "asin"},
		{"asin(-1.5)", "asin"},
		{"acos(2)", "acos"},
		{"sqrt(-1)", "sqrt"},
		{"ln(0)", "ln"},
		{"ln(-1)", "ln"},
		{"log(0)", "log"},
		{"log(-10)", "log"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			r, err := calcr.NewEnv().EvalString(c.src)
			if err == nil {
				t.Fatalf("%q evaluated to %g, want domain error", c.src, r)
			}
			derr := new(calcr.DomainError)
			if !errors.As(err, &derr) {
				t.Fatalf("%q gave %#v, want *DomainError", c.src, err)
			}
			if derr.Func != c.fn {
				t.Errorf("%q blamed %q, want %q", c.src, derr.Func, c.fn)
			}
		})
	}
}

func TestFuncDomainEdges(t *testing.T) {
	// The closed interval ends of asin/acos and zero for sqrt are in
	// domain.
	for _, src := range []string{"asin(-1)", "asin(1)", "acos(-1)", "acos(1)", "sqrt(0)"} {
		if _, err := calcr.NewEnv().EvalString(src); err != nil {
			t.Errorf("%q failed to evaluate: %v", src, err)
		}
	}
}
