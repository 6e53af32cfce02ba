package layerlist

import (
	"unicode"
	"unicode/utf8"
)

// scanner splits a layer list string into tokens. It holds no references
// other than the source string, so a copy of the scanner is a complete
// snapshot that the parser can restore when a pattern fails to match.
type scanner struct {
	src string
	off int
	col int

	pos Pos
	tok token
	lit string
}

func newScanner(src string) *scanner {
	sc := &scanner{
		src: src,
	}
	sc.next()
	return sc
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func (sc *scanner) peek() (rune, int) {
	if sc.off >= len(sc.src) {
		return -1, 0
	}

	r, w := rune(sc.src[sc.off]), 1

	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRuneInString(sc.src[sc.off:])
	}
	return r, w
}

func (sc *scanner) get() rune {
	r, w := sc.peek()

	if w > 0 {
		sc.off += w
		sc.col++
	}
	return r
}

func (sc *scanner) getpos() Pos {
	return Pos{
		Offset: sc.off,
		Col:    sc.col,
	}
}

func (sc *scanner) ident() {
	start := sc.off

	sc.get()

	for {
		r, _ := sc.peek()

		if !isLetter(r) && !isDigit(r) {
			break
		}
		sc.get()
	}

	sc.tok = _Name
	sc.lit = sc.src[start:sc.off]
}

func (sc *scanner) number() {
	start := sc.off

	for {
		r, _ := sc.peek()

		if !isDigit(r) {
			break
		}
		sc.get()
	}

	sc.tok = _Int
	sc.lit = sc.src[start:sc.off]
}

// skip drops the current token and resumes scanning one character after its
// start.
func (sc *scanner) skip() {
	sc.off = sc.pos.Offset
	sc.col = sc.pos.Col
	sc.get()
	sc.next()
}

func (sc *scanner) next() {
	sc.pos = sc.getpos()
	sc.lit = ""

	r, _ := sc.peek()

	if isLetter(r) {
		sc.ident()
		return
	}

	if isDigit(r) {
		sc.number()
		return
	}

	sc.get()

	switch r {
	case -1:
		sc.tok = _EOF
	case ' ':
		sc.tok = _Blank
	case ',':
		sc.tok = _Comma
	case '(':
		sc.tok = _Lparen
	case ')':
		sc.tok = _Rparen
	case '/':
		sc.tok = _Slash
	default:
		if unicode.IsSpace(r) {
			sc.tok = _Space
			break
		}
		sc.tok = _Illegal
		sc.lit = string(r)
	}
}
