package calcr

import (
	"errors"
	"strings"
)

// ErrQuit is reported by EvalString when the line is the quit command rather
// than an equation.
var ErrQuit = errors.New("quit")

// Env is the symbol table for a calculator session. It maps case-folded
// names to the builtin constants and functions, seeded at construction, and
// to the variables accumulated by assignments. It is not safe to share an
// Env between goroutines; embedding calcr in a multi-client program requires
// one Env per client.
type Env struct {
	consts map[string]float64
	funcs  map[string]Func
	vars   map[string]float64
}

// NewEnv creates an environment with the builtin constants pi, e, and phi,
// the builtin functions, and ans set to 0.
func NewEnv() *Env {
	return &Env{
		consts: consts,
		funcs:  builtins,
		vars:   map[string]float64{"ans": 0},
	}
}

// Const returns the value of a named constant.
func (env *Env) Const(name string) (float64, bool) {
	v, ok := env.consts[strings.ToLower(name)]
	return v, ok
}

// Func returns the named builtin function.
func (env *Env) Func(name string) (Func, bool) {
	f, ok := env.funcs[strings.ToLower(name)]
	return f, ok
}

// Var returns the value of a variable.
func (env *Env) Var(name string) (float64, bool) {
	v, ok := env.vars[strings.ToLower(name)]
	return v, ok
}

// SetVar inserts or overwrites a variable under a case-folded key.
// Assigning to a builtin constant or function name is rejected with an
// AssignError so that names like pi keep their meaning for the whole
// session.
func (env *Env) SetVar(name string, val float64) error {
	name = strings.ToLower(name)
	if _, ok := env.consts[name]; ok {
		return &AssignError{Name: name}
	}
	if _, ok := env.funcs[name]; ok {
		return &AssignError{Name: name}
	}
	env.vars[name] = val
	return nil
}

// EvalString tokenizes, parses, and evaluates one line against env. An
// assignment stores its variable only after the right-hand side evaluates
// successfully, and its result is the stored value. After any successful
// evaluation the result is also recorded as ans. The quit command is
// recognized, case-insensitively, before tokenization and reported as
// ErrQuit; it is not an equation.
func (env *Env) EvalString(line string) (float64, error) {
	if strings.EqualFold(strings.TrimSpace(line), "quit") {
		return 0, ErrQuit
	}
	a, err := ParseString(line, env)
	if err != nil {
		return 0, err
	}
	r, err := a.Eval(env)
	if err != nil {
		return 0, err
	}
	env.vars["ans"] = r
	return r, nil
}
