//go:build go1.18
// +build go1.18

package calcr_test

import (
	"testing"

	"github.com/opp11/calcr"
)

func FuzzEvalString(f *testing.F) {
	f.Add("x = sin(0.5*pi)")
	f.Add("-5!")
	f.Add("1/0")
	f.Add("ans ^ ans")
	f.Fuzz(func(t *testing.T, s string) {
		env := calcr.NewEnv()
		env.EvalString(s)
	})
}
