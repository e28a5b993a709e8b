package typeexpr

import "strings"

// Render serializes an AST back into its canonical string form.
// Rendering is deterministic: qualified chains keep only their final
// segment, subscript arguments keep their order, and unions render
// with an infix " | " separator. A Union[...] subscript is spelled in
// the flat infix form at every arity so both spellings of a union
// reach the same canonical string.
func Render(n Node) string {
	switch v := n.(type) {
	case Name:
		return v.Ident
	case Qualified:
		return v.Chain[len(v.Chain)-1]
	case Literal:
		return v.Text
	case Union:
		return Render(v.Left) + " | " + Render(v.Right)
	case Subscript:
		base := Render(v.Base)
		parts := make([]string, len(v.Args))
		for i, a := range v.Args {
			parts[i] = Render(a)
		}
		if base == "Union" {
			return strings.Join(parts, " | ")
		}
		return base + "[" + strings.Join(parts, ", ") + "]"
	}
	// The node set is closed; the parser never builds anything else.
	return ""
}
