package docstring

import (
	"reflect"
	"testing"
)

func TestParseStyle(t *testing.T) {
	cases := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"google", StyleGoogle, false},
		{"numpy", StyleNumpy, false},
		{"sphinx", StyleSphinx, false},
		{"auto", StyleAuto, false},
		{"", StyleAuto, false},
		{"restructured", "", true},
	}
	for _, c := range cases {
		got, err := ParseStyle(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseStyle(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStyle(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseStyle(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExtract_GoogleStyle(t *testing.T) {
	doc := `Create user information dictionary.

Args:
    name: User's full name
    age: User's age in years
    email: User's email address (optional)
    active: Whether user account is active

Returns:
    Dictionary containing user information
`
	want := map[string]string{
		"name":   "User's full name",
		"age":    "User's age in years",
		"email":  "User's email address (optional)",
		"active": "Whether user account is active",
	}
	for _, style := range []Style{StyleAuto, StyleGoogle} {
		if got := Extract(doc, style); !reflect.DeepEqual(got, want) {
			t.Errorf("style %q: got %v, want %v", style, got, want)
		}
	}
}

func TestExtract_GoogleTypeTokens(t *testing.T) {
	doc := `Args:
    count (int): How many to take.
    label (str, optional): Display label,
        wrapped onto a second line.
`
	got := Extract(doc, StyleGoogle)
	if got["count"] != "How many to take." {
		t.Errorf("count: got %q", got["count"])
	}
	if got["label"] != "Display label, wrapped onto a second line." {
		t.Errorf("label: got %q", got["label"])
	}
}

func TestExtract_NumpyStyle(t *testing.T) {
	doc := `Process data records.

Parameters
----------
data : list of dict
    Input data records.
config : dict, optional
    Extra configuration mapping.

Returns
-------
dict
    Processed result.
`
	want := map[string]string{
		"data":   "Input data records.",
		"config": "Extra configuration mapping.",
	}
	for _, style := range []Style{StyleAuto, StyleNumpy} {
		if got := Extract(doc, style); !reflect.DeepEqual(got, want) {
			t.Errorf("style %q: got %v, want %v", style, got, want)
		}
	}
}

func TestExtract_SphinxStyle(t *testing.T) {
	doc := `Fetch a widget.

:param name: The widget name.
:param str color: Color with a type token.
:param size: Size spanning
    two lines.
:returns: The widget.
`
	want := map[string]string{
		"name":  "The widget name.",
		"color": "Color with a type token.",
		"size":  "Size spanning two lines.",
	}
	for _, style := range []Style{StyleAuto, StyleSphinx} {
		if got := Extract(doc, style); !reflect.DeepEqual(got, want) {
			t.Errorf("style %q: got %v, want %v", style, got, want)
		}
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	for _, style := range []Style{StyleAuto, StyleGoogle, StyleNumpy, StyleSphinx} {
		got := Extract("", style)
		if len(got) != 0 {
			t.Errorf("style %q: expected empty mapping, got %v", style, got)
		}
	}
	if got := Extract("   \n\t  ", StyleAuto); len(got) != 0 {
		t.Errorf("whitespace docstring: expected empty mapping, got %v", got)
	}
}

func TestExtract_NoSectionsFallsBackQuietly(t *testing.T) {
	doc := "Just a plain description with no parameter markers at all."
	if got := Extract(doc, StyleAuto); len(got) != 0 {
		t.Errorf("expected empty mapping, got %v", got)
	}
}

func TestExtract_ResultIsFreshPerCall(t *testing.T) {
	doc := ":param a: first thing."
	m1 := Extract(doc, StyleAuto)
	m1["a"] = "mutated"
	m2 := Extract(doc, StyleAuto)
	if m2["a"] != "first thing." {
		t.Errorf("mapping shared between calls: %v", m2)
	}
}
