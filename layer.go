package layerlist

import "strconv"

// Layer is a single reference to a mask layer. It is implemented by Pair,
// NamedPair and Named only.
type Layer interface {
	Kind() Kind

	// String returns the canonical token for the layer.
	String() string

	layer()
}

// Pair is a bare layer/datatype pair, written as 1/0 or (1/0).
type Pair struct {
	Number   int
	Datatype int
}

// NamedPair is a symbolic name bound to a layer/datatype pair, written as
// metal1 (1/0).
type NamedPair struct {
	Name     string
	Number   int
	Datatype int
}

// Named is a layer referenced by its symbolic name alone.
type Named struct {
	Name string
}

func (Pair) layer()      {}
func (NamedPair) layer() {}
func (Named) layer()     {}

func (Pair) Kind() Kind      { return PairKind }
func (NamedPair) Kind() Kind { return NamedPairKind }
func (Named) Kind() Kind     { return NamedKind }

func (p Pair) String() string {
	return itoa(p.Number) + "/" + itoa(p.Datatype)
}

func (p NamedPair) String() string {
	return p.Name + " (" + itoa(p.Number) + "/" + itoa(p.Datatype) + ")"
}

func (n Named) String() string {
	return n.Name
}

// Pair returns the layer/datatype pair of the named pair.
func (p NamedPair) Pair() Pair {
	return Pair{Number: p.Number, Datatype: p.Datatype}
}

// List is an ordered set of layers. The order is the order in which the
// layers appeared in the parsed string.
type List []Layer

// Equal reports whether both lists hold the same layers in the same order.
func (l List) Equal(other List) bool {
	if len(l) != len(other) {
		return false
	}

	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
