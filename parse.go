package calcr

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// The parser is a recursive descent over the following grammar:
//
//	Input    = name '=' Equation | Equation
//	Equation = Product { ('+'|'-') Product }
//	Product  = Factor { ('*'|'/') Factor }
//	Factor   = '-' Factor | Postfix [ '^' Factor ]
//	Postfix  = Primary { '!' }
//	Primary  = num | name | func Arg | '(' Equation ')' | '|' Equation '|'
//	Arg      = '(' Equation ')' | Factor
//
// '^' is right-associative, so 2^3^2 is 2^(3^2). '!' binds tightest of all
// operators, and unary '-' binds looser than both '!' and '^', so -2^2 is
// -(2^2) and -5! is -(5!).

// Expr is a parsed equation that can be evaluated against an environment.
type Expr struct {
	n *node
}

// Parse reads a single equation from src. Identifiers are resolved against
// env at parse time: constant and variable names become value references,
// function names must head a call, and anything else is a NameError. Every
// error caused by the input implements InputError.
func Parse(src io.RuneScanner, env *Env) (*Expr, error) {
	p := &parser{scan: lex(src), env: env}
	n, err := p.parseInput()
	if err != nil {
		return nil, err
	}
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenEOF:
		return &Expr{n: n}, nil
	case tokenClose:
		return nil, &BracketError{Col: tok.pos, Right: tok.text}
	default:
		return nil, &TokenError{Col: tok.pos, Token: tok.text}
	}
}

// ParseString is a shortcut to parse an equation from a string.
func ParseString(src string, env *Env) (*Expr, error) {
	return Parse(strings.NewReader(src), env)
}

// String creates a fully parenthesized rendering of the parsed equation.
func (e *Expr) String() string {
	return e.n.String()
}

type parser struct {
	scan *lexer
	env  *Env
	// pending holds tokens pushed back by the parser, latest first.
	pending []lexToken
}

// next returns the next token, preferring pushed-back tokens.
func (p *parser) next() (lexToken, error) {
	if n := len(p.pending); n > 0 {
		tok := p.pending[n-1]
		p.pending = p.pending[:n-1]
		return tok, nil
	}
	return p.scan.next()
}

// push unreads a token so that it is the next token returned from next.
func (p *parser) push(tok lexToken) {
	p.pending = append(p.pending, tok)
}

// parseInput parses an equation with an optional leading assignment target.
// The target may only be a plain variable name; assigning to a builtin
// constant or function is rejected.
func (p *parser) parseInput() (*node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenIdent {
		nxt, err := p.next()
		if err != nil {
			return nil, err
		}
		if nxt.kind == tokenAssign {
			if _, ok := p.env.Const(tok.text); ok {
				return nil, &AssignError{Col: tok.pos, Name: tok.text}
			}
			if _, ok := p.env.Func(tok.text); ok {
				return nil, &AssignError{Col: tok.pos, Name: tok.text}
			}
			rhs, err := p.parseEquation()
			if err != nil {
				return nil, err
			}
			return &node{kind: nodeAssign, name: tok.text, left: rhs}, nil
		}
		p.push(nxt)
	}
	p.push(tok)
	return p.parseEquation()
}

func (p *parser) parseEquation() (*node, error) {
	lhs, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		var kind nodeKind
		switch {
		case tok.kind == tokenOp && tok.text == "+":
			kind = nodeAdd
		case tok.kind == tokenOp && tok.text == "-":
			kind = nodeSub
		default:
			p.push(tok)
			return lhs, nil
		}
		rhs, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		lhs = &node{kind: kind, left: lhs, right: rhs}
	}
}

func (p *parser) parseProduct() (*node, error) {
	lhs, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		var kind nodeKind
		switch {
		case tok.kind == tokenOp && tok.text == "*":
			kind = nodeMul
		case tok.kind == tokenOp && tok.text == "/":
			kind = nodeDiv
		default:
			p.push(tok)
			return lhs, nil
		}
		rhs, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		lhs = &node{kind: kind, left: lhs, right: rhs}
	}
}

// parseFactor parses unary negation and exponentiation. The lexer only
// produces '-' tokens; seeing one where a term starts means negation.
func (p *parser) parseFactor() (*node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenOp && tok.text == "-" {
		rhs, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, left: rhs}, nil
	}
	p.push(tok)
	lhs, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	tok, err = p.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenOp && tok.text == "^" {
		// Right-associative: the exponent is a whole Factor.
		rhs, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodePow, left: lhs, right: rhs}, nil
	}
	p.push(tok)
	return lhs, nil
}

func (p *parser) parsePostfix() (*node, error) {
	n, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenOp || tok.text != "!" {
			p.push(tok)
			return n, nil
		}
		n = &node{kind: nodeFact, left: n}
	}
}

func (p *parser) parsePrimary() (*node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			// scanNum validated the form, so the only possible failure is a
			// literal outside the float64 range, which ParseFloat saturates
			// to ±Inf or rounds to zero.
			var ne *strconv.NumError
			if !errors.As(err, &ne) || ne.Err != strconv.ErrRange {
				panic("calcr: invalid number " + strconv.Quote(tok.text) + ": " + err.Error())
			}
		}
		return &node{kind: nodeNum, name: tok.text, val: v}, nil
	case tokenIdent:
		return p.parseName(tok)
	case tokenOpen:
		n, err := p.parseEquation()
		if err != nil {
			return nil, err
		}
		end, err := p.next()
		if err != nil {
			return nil, err
		}
		if end.kind != tokenClose {
			return nil, unclosed(end, "(")
		}
		return n, nil
	case tokenAbs:
		// |x| is absolute value, a prefix-free spelling of abs(x).
		n, err := p.parseEquation()
		if err != nil {
			return nil, err
		}
		end, err := p.next()
		if err != nil {
			return nil, err
		}
		if end.kind != tokenAbs {
			return nil, unclosed(end, "|")
		}
		return &node{kind: nodeCall, name: "abs", fn: builtins["abs"], left: n}, nil
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	case tokenClose, tokenAssign:
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	default:
		return nil, &TokenError{Col: tok.pos, Token: tok.text}
	}
}

// parseName parses a resolved identifier: a call if the name is a function,
// otherwise a constant or variable reference.
func (p *parser) parseName(tok lexToken) (*node, error) {
	if fn, ok := p.env.Func(tok.text); ok {
		arg, err := p.parseArg(tok.text)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeCall, name: tok.text, fn: fn, left: arg}, nil
	}
	if _, ok := p.env.Const(tok.text); ok {
		return &node{kind: nodeConst, name: tok.text}, nil
	}
	if _, ok := p.env.Var(tok.text); ok {
		return &node{kind: nodeVar, name: tok.text}, nil
	}
	return nil, &NameError{Col: tok.pos, Name: tok.text}
}

// parseArg parses the single argument of a function: a parenthesized
// equation, or a bare term. A bare argument is one Factor, so it binds
// negation, factorial, and exponentiation but not multiplication:
// sin 0.5*pi is sin(0.5)*pi.
func (p *parser) parseArg(name string) (*node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenOpen {
		n, err := p.parseEquation()
		if err != nil {
			return nil, err
		}
		end, err := p.next()
		if err != nil {
			return nil, err
		}
		if end.kind != tokenClose {
			return nil, unclosed(end, "(")
		}
		return n, nil
	}
	p.push(tok)
	n, err := p.parseFactor()
	if err != nil {
		if ee, ok := err.(*EmptyExpressionError); ok {
			return nil, &CallError{Col: ee.Col, Func: name}
		}
		return nil, err
	}
	return n, nil
}

// unclosed returns an error appropriate for a group opened with open and
// ended by end, which is anything but the matching closer.
func unclosed(end lexToken, open string) error {
	switch end.kind {
	case tokenEOF:
		return &BracketError{Col: end.pos, Left: open, Right: ""}
	case tokenClose, tokenAbs:
		return &BracketError{Col: end.pos, Left: open, Right: end.text}
	default:
		return &TokenError{Col: end.pos, Token: end.text}
	}
}
