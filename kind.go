package layerlist

// Kind identifies the shape of a Layer.
type Kind uint

const (
	PairKind      Kind = iota + 1 // pair
	NamedPairKind                 // named pair
	NamedKind                     // named
)

func (k Kind) String() string {
	switch k {
	case PairKind:
		return "pair"
	case NamedPairKind:
		return "named pair"
	case NamedKind:
		return "named"
	}
	return "Kind(" + itoa(int(k)) + ")"
}
