package layerlist

import "testing"

func Test_Format(t *testing.T) {
	tests := []struct {
		l        List
		expected string
	}{
		{List{}, ""},
		{nil, ""},
		{List{Named{Name: "met1"}}, "met1"},
		{List{Pair{Number: 3, Datatype: 10}}, "3/10"},
		{
			List{
				NamedPair{Name: "metal1", Number: 1, Datatype: 0},
				Pair{Number: 99, Datatype: 42},
				Named{Name: "via1"},
			},
			"metal1 (1/0) 99/42 via1",
		},
	}

	for _, test := range tests {
		if s := Format(test.l); s != test.expected {
			t.Errorf("unexpected Format, expected=%q, got=%q\n", test.expected, s)
		}

		if s := test.l.String(); s != test.expected {
			t.Errorf("unexpected List.String, expected=%q, got=%q\n", test.expected, s)
		}
	}
}

func Test_FormatCanonical(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"metal1(1/0),,via1 ( 2 / 0 )", "metal1 (1/0) via1 (2/0)"},
		{"(3/10)", "3/10"},
		{"  007/01 ,met1", "7/1 met1"},
	}

	for _, test := range tests {
		l, err := Parse(test.in)

		if err != nil {
			t.Errorf("%q - %s\n", test.in, err)
			continue
		}

		s := Format(l)

		if s != test.expected {
			t.Errorf("%q - unexpected Format, expected=%q, got=%q\n", test.in, test.expected, s)
		}

		again, err := Parse(s)

		if err != nil {
			t.Errorf("%q - %s\n", s, err)
			continue
		}

		checkList(t, l, again)

		if s2 := Format(again); s2 != s {
			t.Errorf("%q - Format not stable, expected=%q, got=%q\n", test.in, s, s2)
		}
	}
}

func Test_Kind(t *testing.T) {
	tests := []struct {
		l        Layer
		expected string
	}{
		{Pair{}, "pair"},
		{NamedPair{}, "named pair"},
		{Named{}, "named"},
	}

	for _, test := range tests {
		if s := test.l.Kind().String(); s != test.expected {
			t.Errorf("unexpected Kind, expected=%q, got=%q\n", test.expected, s)
		}
	}

	if s := Kind(9).String(); s != "Kind(9)" {
		t.Errorf("unexpected Kind, expected=%q, got=%q\n", "Kind(9)", s)
	}
}
