package layerlist

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func Test_TextRoundTrip(t *testing.T) {
	var l List

	if err := l.UnmarshalText([]byte("metal1 (1/0), 2/0 via1")); err != nil {
		t.Fatal(err)
	}

	b, err := l.MarshalText()

	if err != nil {
		t.Fatal(err)
	}

	if s := string(b); s != "metal1 (1/0) 2/0 via1" {
		t.Errorf("unexpected MarshalText, got=%q\n", s)
	}
}

func Test_UnmarshalTextError(t *testing.T) {
	l := List{Named{Name: "keep"}}

	err := l.UnmarshalText([]byte("a @"))

	var errs ErrorList

	if !errors.As(err, &errs) {
		t.Fatalf("expected ErrorList, got=%T(%v)\n", err, err)
	}

	checkList(t, List{Named{Name: "keep"}}, l)
}

func Test_YAML(t *testing.T) {
	var doc struct {
		Scalar   List `yaml:"scalar"`
		Sequence List `yaml:"sequence"`
	}

	src := `
scalar: metal1 (1/0) via1
sequence:
  - 1/0
  - metal2 (3/0), 4/0
`

	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatal(err)
	}

	checkList(t, List{NamedPair{Name: "metal1", Number: 1}, Named{Name: "via1"}}, doc.Scalar)
	checkList(t, List{
		Pair{Number: 1},
		NamedPair{Name: "metal2", Number: 3},
		Pair{Number: 4},
	}, doc.Sequence)

	b, err := yaml.Marshal(doc)

	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(b), "sequence: 1/0 metal2 (3/0) 4/0") {
		t.Errorf("unexpected yaml.Marshal output, got=%q\n", string(b))
	}
}

func Test_YAMLErrors(t *testing.T) {
	tests := []string{
		"layers: a @",
		"layers: [ok, 1/]",
		"layers: {a: b}",
		"layers: [[a]]",
	}

	for _, src := range tests {
		var doc struct {
			Layers List `yaml:"layers"`
		}

		if err := yaml.Unmarshal([]byte(src), &doc); err == nil {
			t.Errorf("%q - expected error\n", src)
		}
	}
}
