package calcr

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}, 0},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}, 0},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1.5", []lexToken{{text: "1.5", kind: tokenNum, pos: 1}}, 0},
		{".5", []lexToken{{text: ".5", kind: tokenNum, pos: 1}}, 0},
		{"1e3", []lexToken{{text: "1e3", kind: tokenNum, pos: 1}}, 0},
		{"1e+3", []lexToken{{text: "1e+3", kind: tokenNum, pos: 1}}, 0},
		{"1e-3", []lexToken{{text: "1e-3", kind: tokenNum, pos: 1}}, 0},
		{"1e", nil, 1},
		{"1.1.1", []lexToken{{text: "1", kind: tokenNum, pos: 5}}, 1},
		{".", nil, 1},
		{"1a", nil, 1},
		// identifiers fold to lowercase and normalize aliases
		{"x", []lexToken{{text: "x", kind: tokenIdent, pos: 1}}, 0},
		{"x1", []lexToken{{text: "x1", kind: tokenIdent, pos: 1}}, 0},
		{"PI", []lexToken{{text: "pi", kind: tokenIdent, pos: 1}}, 0},
		{"Sin", []lexToken{{text: "sin", kind: tokenIdent, pos: 1}}, 0},
		{"π", []lexToken{{text: "pi", kind: tokenIdent, pos: 1}}, 0},
		{"ϕ", []lexToken{{text: "phi", kind: tokenIdent, pos: 1}}, 0},
		{"φ", []lexToken{{text: "phi", kind: tokenIdent, pos: 1}}, 0},
		{"√", []lexToken{{text: "sqrt", kind: tokenIdent, pos: 1}}, 0},
		{"√4", []lexToken{{text: "sqrt", kind: tokenIdent, pos: 1}, {text: "4", kind: tokenNum, pos: 2}}, 0},
		// operators
		{"+-*/^!", []lexToken{
			{text: "+", kind: tokenOp, pos: 1},
			{text: "-", kind: tokenOp, pos: 2},
			{text: "*", kind: tokenOp, pos: 3},
			{text: "/", kind: tokenOp, pos: 4},
			{text: "^", kind: tokenOp, pos: 5},
			{text: "!", kind: tokenOp, pos: 6},
		}, 0},
		{"×", []lexToken{{text: "*", kind: tokenOp, pos: 1}}, 0},
		{"÷", []lexToken{{text: "/", kind: tokenOp, pos: 1}}, 0},
		// brackets, assignment, abs delimiters
		{"( )", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: ")", kind: tokenClose, pos: 3}}, 0},
		{"=", []lexToken{{text: "=", kind: tokenAssign, pos: 1}}, 0},
		{"|", []lexToken{{text: "|", kind: tokenAbs, pos: 1}}, 0},
		{"x = 2", []lexToken{
			{text: "x", kind: tokenIdent, pos: 1},
			{text: "=", kind: tokenAssign, pos: 3},
			{text: "2", kind: tokenNum, pos: 5},
		}, 0},
		{"sin(0.5)", []lexToken{
			{text: "sin", kind: tokenIdent, pos: 1},
			{text: "(", kind: tokenOpen, pos: 4},
			{text: "0.5", kind: tokenNum, pos: 5},
			{text: ")", kind: tokenClose, pos: 8},
		}, 0},
		// erroneous symbols
		{"$", nil, 1},
		{"2 $", []lexToken{{text: "2", kind: tokenNum, pos: 1}}, 1},
		{"$ 2", []lexToken{{text: "2", kind: tokenNum, pos: 3}}, 1},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		var got []lexToken
		errs := 0
		for {
			tok, err := scan.next()
			if err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				errs++
				continue
			}
			if tok.kind == tokenEOF {
				continue
			}
			got = append(got, tok)
		}
		if !reflect.DeepEqual(got, c.tokens) {
			t.Errorf("scanning %q: want %v, got %v", c.src, c.tokens, got)
		}
		if errs != c.errs {
			t.Errorf("scanning %q: want %d errors, got %d", c.src, c.errs, errs)
		}
	}
}

func TestLexEOFSentinel(t *testing.T) {
	scan := lex(strings.NewReader("1"))
	tok, err := scan.next()
	if err != nil || tok.kind != tokenNum {
		t.Fatalf("want number token, got %v with error %v", tok, err)
	}
	tok, err = scan.next()
	if err != nil || tok.kind != tokenEOF {
		t.Fatalf("want EOF token, got %v with error %v", tok, err)
	}
	if _, err := scan.next(); !errors.Is(err, io.EOF) {
		t.Errorf("want io.EOF after sentinel, got %v", err)
	}
}

func TestLexErrorPosition(t *testing.T) {
	scan := lex(strings.NewReader("12 $"))
	if tok, err := scan.next(); err != nil || tok.text != "12" {
		t.Fatalf("want number token, got %v with error %v", tok, err)
	}
	_, err := scan.next()
	lerr := new(LexError)
	if !errors.As(err, &lerr) {
		t.Fatalf("want *LexError, got %#v", err)
	}
	if lerr.Text != "$" {
		t.Errorf("want offending text %q, got %q", "$", lerr.Text)
	}
	if lerr.Pos() != 5 {
		t.Errorf("want position 5, got %d", lerr.Pos())
	}
}
