package layerlist

import (
	"fmt"
	"math"
	"strconv"
)

// MaxNumber is the largest layer or datatype number accepted by the parser.
const MaxNumber = math.MaxInt32

type parser struct {
	*scanner

	errh func(Pos, string)
	errc int
}

// Parse parses the given layer list string. Layers may be written as bare
// names, bare pairs, parenthesised pairs, or names followed by a
// parenthesised pair, separated by blanks or commas:
//
//	metal1 (1/0) via1 (2/0), metal2 (3/0) 1/0 (99/42) poly
//
// If any error is encountered the returned list is nil and the error is an
// ErrorList holding every error found, otherwise the list holds the layers in
// the order they were written.
func Parse(s string) (List, error) {
	var errs ErrorList

	l, _ := ParseFunc(s, errs.add)

	if err := errs.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

// ParseFunc parses the given layer list string the same way Parse does, but
// passes each error to errh as soon as it is found. This is intended for
// validating input as it is typed.
func ParseFunc(s string, errh func(Pos, string)) (List, error) {
	p := parser{
		scanner: newScanner(s),
		errh:    errh,
	}
	return p.parse()
}

// Valid reports whether s is a valid layer list string.
func Valid(s string) bool {
	_, err := ParseFunc(s, func(Pos, string) {})
	return err == nil
}

func (p *parser) errAt(pos Pos, msg string) {
	p.errc++

	if p.errh != nil {
		p.errh(pos, msg)
	}
}

func (p *parser) got(tok token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

func (p *parser) space() {
	for p.tok == _Blank || p.tok == _Space {
		p.next()
	}
}

type num struct {
	pos Pos
	lit string
}

// pair parses L / D.
func (p *parser) pair() (num, num, bool) {
	var l, d num

	if p.tok != _Int {
		return l, d, false
	}

	l = num{pos: p.pos, lit: p.lit}
	p.next()
	p.space()

	if !p.got(_Slash) {
		return l, d, false
	}

	p.space()

	if p.tok != _Int {
		return l, d, false
	}

	d = num{pos: p.pos, lit: p.lit}
	p.next()
	return l, d, true
}

// paren parses ( L / D ), including any white space before the opening
// parenthesis.
func (p *parser) paren() (num, num, bool) {
	p.space()

	if !p.got(_Lparen) {
		return num{}, num{}, false
	}

	p.space()

	l, d, ok := p.pair()

	if !ok {
		return l, d, false
	}

	p.space()

	if !p.got(_Rparen) {
		return l, d, false
	}
	return l, d, true
}

func (p *parser) number(n num) (int, bool) {
	i, err := strconv.ParseInt(n.lit, 10, 64)

	if err != nil || i > MaxNumber {
		p.errAt(n.pos, "number out of range")
		return 0, false
	}
	return int(i), true
}

func (p *parser) numbers(l, d num) (int, int, bool) {
	layer, lok := p.number(l)
	datatype, dok := p.number(d)

	return layer, datatype, lok && dok
}

// layer attempts each layer pattern at the current token, longest first.
// The returned bool reports whether a pattern matched; the layer itself is
// nil if the match held an out of range number. If nothing matched the
// scanner is left where it was.
func (p *parser) layer() (Layer, bool) {
	saved := *p.scanner

	switch p.tok {
	case _Name:
		name := p.lit
		p.next()

		after := *p.scanner

		if l, d, ok := p.paren(); ok {
			layer, datatype, ok := p.numbers(l, d)

			if !ok {
				return nil, true
			}
			return NamedPair{Name: name, Number: layer, Datatype: datatype}, true
		}

		*p.scanner = after
		return Named{Name: name}, true
	case _Blank, _Space, _Lparen:
		if l, d, ok := p.paren(); ok {
			layer, datatype, ok := p.numbers(l, d)

			if !ok {
				return nil, true
			}
			return Pair{Number: layer, Datatype: datatype}, true
		}
	case _Int:
		if l, d, ok := p.pair(); ok {
			layer, datatype, ok := p.numbers(l, d)

			if !ok {
				return nil, true
			}
			return Pair{Number: layer, Datatype: datatype}, true
		}
	}

	*p.scanner = saved
	return nil, false
}

func (p *parser) parse() (List, error) {
	l := make(List, 0)

	for p.tok != _EOF {
		if layer, ok := p.layer(); ok {
			if layer != nil {
				l = append(l, layer)
			}
			continue
		}

		if p.tok == _Blank || p.tok == _Comma {
			p.next()
			continue
		}

		p.errAt(p.pos, "unexpected token")
		p.skip()
	}

	if p.errc > 0 {
		return nil, fmt.Errorf("layerlist: parser encountered %d error(s)", p.errc)
	}
	return l, nil
}
