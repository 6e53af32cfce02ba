package layerlist

type token uint

const (
	_EOF token = iota + 1 // eof

	_Name // name
	_Int  // int

	_Blank // blank
	_Space // whitespace
	_Comma // comma

	_Lparen // (
	_Rparen // )
	_Slash  // /

	_Illegal // illegal
)

var tokenNames = [...]string{
	_EOF:     "eof",
	_Name:    "name",
	_Int:     "int",
	_Blank:   "blank",
	_Space:   "whitespace",
	_Comma:   "comma",
	_Lparen:  "(",
	_Rparen:  ")",
	_Slash:   "/",
	_Illegal: "illegal",
}

func (tok token) String() string {
	if int(tok) < len(tokenNames) && tokenNames[tok] != "" {
		return tokenNames[tok]
	}
	return "token(" + itoa(int(tok)) + ")"
}
