package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/andrewpillar/layerlist"
)

var (
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")

	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	kindWidth   = 12
	nameWidth   = 16
	numberWidth = 10
)

// record is the flattened form of a layer used for structured output.
type record struct {
	Kind     string `json:"kind" yaml:"kind"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Layer    *int   `json:"layer,omitempty" yaml:"layer,omitempty"`
	Datatype *int   `json:"datatype,omitempty" yaml:"datatype,omitempty"`
}

func newRecord(l layerlist.Layer) record {
	r := record{
		Kind: l.Kind().String(),
	}

	switch v := l.(type) {
	case layerlist.Pair:
		r.Layer = &v.Number
		r.Datatype = &v.Datatype
	case layerlist.NamedPair:
		r.Name = v.Name
		r.Layer = &v.Number
		r.Datatype = &v.Datatype
	case layerlist.Named:
		r.Name = v.Name
	default:
		panic(fmt.Sprintf("unknown layer type %T", l))
	}
	return r
}

func records(l layerlist.List) []record {
	rr := make([]record, 0, len(l))

	for _, it := range l {
		rr = append(rr, newRecord(it))
	}
	return rr
}

func writeTable(w io.Writer, l layerlist.List) {
	header := headerStyle.Width(kindWidth).Render("KIND") +
		headerStyle.Width(nameWidth).Render("NAME") +
		headerStyle.Width(numberWidth).Render("LAYER") +
		headerStyle.Width(numberWidth).Render("DATATYPE")

	fmt.Fprintln(w, header)
	fmt.Fprintln(w, mutedStyle.Render(strings.Repeat("─", kindWidth+nameWidth+numberWidth*2)))

	for _, r := range records(l) {
		name, layer, datatype := r.Name, "-", "-"

		if name == "" {
			name = "-"
		}
		if r.Layer != nil {
			layer = strconv.Itoa(*r.Layer)
			datatype = strconv.Itoa(*r.Datatype)
		}

		fmt.Fprintln(w, lipgloss.NewStyle().Width(kindWidth).Render(r.Kind)+
			lipgloss.NewStyle().Width(nameWidth).Render(name)+
			lipgloss.NewStyle().Width(numberWidth).Render(layer)+
			lipgloss.NewStyle().Width(numberWidth).Render(datatype))
	}
}

func writeList(w io.Writer, output string, l layerlist.List) error {
	switch output {
	case "text":
		writeTable(w, l)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records(l))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(records(l)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
	return nil
}

// writeErrors prints the input followed by each error with a caret under the
// column it occurred at.
func writeErrors(w io.Writer, in string, err error) {
	var errs layerlist.ErrorList

	if !errors.As(err, &errs) {
		fmt.Fprintln(w, errorStyle.Render("error:"), err)
		return
	}

	fmt.Fprintln(w, in)

	for _, e := range errs {
		fmt.Fprintln(w, strings.Repeat(" ", e.Pos.Col)+errorStyle.Render("^"), mutedStyle.Render(e.Pos.String()+": "+e.Msg))
	}
}
