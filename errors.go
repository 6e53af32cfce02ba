package layerlist

import (
	"fmt"
	"strconv"
)

// Pos is a position within a layer list string. Offset is the byte offset,
// Col the zero-based character offset.
type Pos struct {
	Offset int
	Col    int
}

func (p Pos) String() string {
	return "col " + strconv.Itoa(p.Col)
}

// Error is a single diagnostic reported while parsing.
type Error struct {
	Pos Pos
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("layerlist: %s - %s", e.Pos, e.Msg)
}

// ErrorList is the set of errors reported by Parse, in input order.
type ErrorList []*Error

func (l *ErrorList) add(pos Pos, msg string) {
	*l = append(*l, &Error{Pos: pos, Msg: msg})
}

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
}

// Err returns nil if the list is empty, otherwise the list itself.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
