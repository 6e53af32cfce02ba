package layerlist

import (
	"fmt"
	"strings"
)

// Format returns the canonical form of the list, each layer's canonical token
// joined by a single blank. Parsing the result yields the same list.
func Format(l List) string {
	var buf strings.Builder

	for i, it := range l {
		if i > 0 {
			buf.WriteByte(' ')
		}

		switch v := it.(type) {
		case Pair:
			buf.WriteString(v.String())
		case NamedPair:
			buf.WriteString(v.String())
		case Named:
			buf.WriteString(v.String())
		default:
			panic(fmt.Sprintf("layerlist: unknown layer type %T", it))
		}
	}
	return buf.String()
}

func (l List) String() string {
	return Format(l)
}
