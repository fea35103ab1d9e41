//go:build go1.18
// +build go1.18

package calcr_test

import (
	"testing"

	"github.com/opp11/calcr"
)

func FuzzParse(f *testing.F) {
	f.Add("x = 1+2")
	f.Add("-5!")
	f.Add("√(π)")
	f.Add("|2^3^2|")
	f.Fuzz(func(t *testing.T, s string) {
		env := calcr.NewEnv()
		calcr.ParseString(s, env)
	})
}
