// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hdl parses the small pin languages used to describe chip interfaces
// ("a, b[16], sel") and part connections ("a=x, out[0..7]=lo, in=true").
//
package hdl

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Type is a token type.
//
type Type int

// Tokens
const (
	EOF Type = iota
	Raw
	Ident
	BracketOpen
	BracketClose
	Comma
	Int
	Range
	Equal
)

var typeNames = [...]string{
	EOF:          "end of input",
	Raw:          "character",
	Ident:        "identifier",
	BracketOpen:  "'['",
	BracketClose: "']'",
	Comma:        "','",
	Int:          "integer",
	Range:        "'..'",
	Equal:        "'='",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Item is a lexed token. Value is a string for Ident and Raw, an int for Int.
//
type Item struct {
	Type  Type
	Pos   int
	Value interface{}
}

func (i Item) String() string {
	switch i.Type {
	case Ident:
		return "identifier " + strconv.Quote(i.Value.(string))
	case Int:
		return "integer " + strconv.Itoa(i.Value.(int))
	case Raw:
		return "character " + strconv.Quote(i.Value.(string))
	}
	return i.Type.String()
}

// Lexer splits its input into Items.
//
type Lexer struct {
	in  string
	pos int
}

// NewLexer returns a new lexer for i/o specs and connection descriptions.
//
func NewLexer(input string) *Lexer {
	return &Lexer{in: input}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.in) {
		l.pos++
		return -1
	}
	r, sz := utf8.DecodeRuneInString(l.in[l.pos:])
	l.pos += sz
	return r
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.in) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.in[l.pos:])
	return r
}

// Lex returns the next token. Once the input is exhausted, it returns EOF
// forever.
//
func (l *Lexer) Lex() Item {
	for unicode.IsSpace(l.peek()) {
		l.next()
	}
	start := l.pos
	r := l.next()
	switch {
	case r < 0:
		l.pos = len(l.in)
		return Item{EOF, start, nil}
	case unicode.IsLetter(r) || r == '_':
		for r = l.peek(); unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'; r = l.peek() {
			l.next()
		}
		return Item{Ident, start, l.in[start:l.pos]}
	case '0' <= r && r <= '9':
		for r = l.peek(); '0' <= r && r <= '9'; r = l.peek() {
			l.next()
		}
		n, err := strconv.Atoi(l.in[start:l.pos])
		if err != nil {
			return Item{Raw, start, l.in[start:l.pos]}
		}
		return Item{Int, start, n}
	case r == '[':
		return Item{BracketOpen, start, "["}
	case r == ']':
		return Item{BracketClose, start, "]"}
	case r == ',':
		return Item{Comma, start, ","}
	case r == '=':
		return Item{Equal, start, "="}
	case r == '.':
		if l.peek() == '.' {
			l.next()
			return Item{Range, start, ".."}
		}
	}
	return Item{Raw, start, string(r)}
}

// Decl is a pin declaration: name or name[width].
//
type Decl struct {
	Name  string
	Width int
	Pos   int
}

// ParseIO parses a comma separated list of pin declarations. For example:
//
//	ParseIO("in[16], load, address[3]")
//
// Pins declared without an explicit width are 1 bit wide.
//
func ParseIO(names string) ([]Decl, error) {
	var out []Decl

	l := NewLexer(names)
	i := l.Lex()
	if i.Type == EOF {
		return nil, nil
	}
	for {
		if i.Type != Ident {
			return nil, parseError(names, i.Pos, "expected pin name, got "+i.String())
		}
		d := Decl{Name: i.Value.(string), Width: 1, Pos: i.Pos}
		// after ident, expect comma, [ or EOF
		i = l.Lex()
		if i.Type == BracketOpen {
			i = l.Lex()
			if i.Type != Int {
				return nil, parseError(names, i.Pos, "missing bus size")
			}
			d.Width = i.Value.(int)
			if i = l.Lex(); i.Type != BracketClose {
				return nil, parseError(names, i.Pos, "missing close bracket")
			}
			i = l.Lex()
		}
		out = append(out, d)
		switch i.Type {
		case EOF:
			return out, nil
		case Comma:
			i = l.Lex()
		default:
			return nil, parseError(names, i.Pos, "expected comma or end of input, got "+i.String())
		}
	}
}

// Pin is a simple pin name
//
type Pin struct {
	Name string
	Pos  int
}

// PinIndex is an indexed pin p[index]
//
type PinIndex struct {
	Pin
	Index int
}

// PinRange is a pin range p[start..end]
//
type PinRange struct {
	Pin
	Start int
	End   int
}

// Literal is an integer constant on the right hand side of an assignment.
//
type Literal struct {
	Value int
	Pos   int
}

// PinAssignment is a part pin to chip pin assignment. pp=pc
//
type PinAssignment struct {
	LHS interface{}
	RHS interface{}
}

// Parser is a simplistic parser for connection lists and single pin
// references.
//
type Parser struct {
	Input string
	l     *Lexer
	i     Item
	state int
}

const (
	stateInit = iota
	stateStarted
	stateDone
)

// Next returns the next item in the input stream: a Pin, PinIndex, PinRange
// or, if allowConns is true, a PinAssignment. It returns nil, nil once the
// input is exhausted.
//
func (p *Parser) Next(allowConns bool) (interface{}, error) {
	if p.state == stateDone {
		return nil, nil
	}
	if p.l == nil {
		p.l = NewLexer(p.Input)
	}

	p.i = p.l.Lex()
	if p.state == stateInit && p.i.Type == EOF {
		p.state = stateDone
		return nil, nil
	}
	p.state = stateStarted

	pin, err := p.getPin(false)
	if err != nil {
		p.state = stateDone
		return nil, err
	}
	switch p.i.Type {
	case EOF:
		p.state = stateDone
		fallthrough
	case Comma:
		return pin, nil
	case Equal:
		if allowConns {
			break
		}
		fallthrough
	default:
		p.state = stateDone
		return nil, parseError(p.Input, p.i.Pos, "unexpected "+p.i.String())
	}

	p.i = p.l.Lex()
	pin2, err := p.getPin(true)
	if err != nil {
		p.state = stateDone
		return nil, err
	}
	switch p.i.Type {
	case EOF:
		p.state = stateDone
		fallthrough
	case Comma:
		return PinAssignment{pin, pin2}, nil
	}

	p.state = stateDone
	return nil, parseError(p.Input, p.i.Pos, "unexpected "+p.i.String())
}

func (p *Parser) getPin(allowLiteral bool) (interface{}, error) {
	if allowLiteral && p.i.Type == Int {
		lit := Literal{p.i.Value.(int), p.i.Pos}
		p.i = p.l.Lex()
		return lit, nil
	}
	if p.i.Type != Ident {
		return nil, parseError(p.Input, p.i.Pos, "expected pin name, got "+p.i.String())
	}
	pin := Pin{p.i.Value.(string), p.i.Pos}
	// after ident, expect ',', '[', '=' or EOF
	p.i = p.l.Lex()
	if p.i.Type != BracketOpen {
		return pin, nil
	}
	p.i = p.l.Lex()
	if p.i.Type != Int {
		return nil, parseError(p.Input, p.i.Pos, "integer value expected after '['")
	}
	start := p.i.Value.(int)
	end := -1
	p.i = p.l.Lex()
	if p.i.Type == Range {
		p.i = p.l.Lex()
		if p.i.Type != Int {
			return nil, parseError(p.Input, p.i.Pos, "integer value expected after '..'")
		}
		end = p.i.Value.(int)
		p.i = p.l.Lex()
	}
	if p.i.Type != BracketClose {
		return nil, parseError(p.Input, p.i.Pos, "closing ']' expected after index or range")
	}
	p.i = p.l.Lex()
	if end >= 0 {
		if end < start {
			start, end = end, start
		}
		return PinRange{pin, start, end}, nil
	}
	return PinIndex{pin, start}, nil
}

// ParseConnections parses a whole connection list.
//
func ParseConnections(s string) ([]PinAssignment, error) {
	var out []PinAssignment
	p := Parser{Input: s}
	for {
		v, err := p.Next(true)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return out, nil
		}
		a, ok := v.(PinAssignment)
		if !ok {
			return nil, parseError(s, position(v), "expected pin assignment")
		}
		out = append(out, a)
	}
}

// ParsePin parses a single pin reference: name, name[i] or name[i..j].
//
func ParsePin(s string) (interface{}, error) {
	p := Parser{Input: s}
	v, err := p.Next(false)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, parseError(s, 0, "empty pin name")
	}
	if p.state != stateDone {
		return nil, parseError(s, p.i.Pos, "unexpected "+p.i.String())
	}
	return v, nil
}

func position(v interface{}) int {
	switch v := v.(type) {
	case Pin:
		return v.Pos
	case PinIndex:
		return v.Pos
	case PinRange:
		return v.Pos
	case Literal:
		return v.Pos
	}
	return 0
}

func parseError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
