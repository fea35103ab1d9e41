package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/opp11/calcr"
)

func main() {
	log.SetFlags(0)
	var inname, verb string
	env := calcr.NewEnv()
	given := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		v, err := env.EvalString(d[1])
		if err != nil {
			return fmt.Errorf("setting %s: %w", d[0], err)
		}
		return env.SetVar(strings.TrimSpace(d[0]), v)
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", given)
	flag.Parse()
	verb += "\n"

	// Arguments are one-shot equations; with none, read stdin or -in,
	// interactively when stdin is a terminal.
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			v, err := env.EvalString(arg)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf(verb, v)
		}
		return
	}
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		batch(env, f, verb)
	case isatty.IsTerminal(os.Stdin.Fd()):
		if err := repl(env, verb); err != nil {
			log.Fatal(err)
		}
	default:
		batch(env, os.Stdin, verb)
	}
}

// batch evaluates file or piped input line by line. Evaluation errors are
// printed and the next line is read; only I/O failures are fatal.
func batch(env *calcr.Env, r io.Reader, verb string) {
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		line := scan.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := env.EvalString(line)
		if err != nil {
			if errors.Is(err, calcr.ErrQuit) {
				return
			}
			fmt.Println(err)
			continue
		}
		fmt.Printf(verb, v)
	}
	if err := scan.Err(); err != nil {
		log.Fatal(err)
	}
}

// repl runs the interactive prompt with line editing and history. The
// session ends on the quit command, ctrl-C, or ctrl-D.
func repl(env *calcr.Env, verb string) error {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, old)
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, ">> ")
	for {
		line, err := t.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := env.EvalString(line)
		if err != nil {
			if errors.Is(err, calcr.ErrQuit) {
				return nil
			}
			fmt.Fprintln(t, err)
			continue
		}
		fmt.Fprintf(t, verb, v)
	}
}
