// Package typeexpr normalizes stringified type expressions into a
// minimal, qualifier-free canonical form. Expressions are parsed with
// a small four-construct grammar (identifier, dotted chain, bracket
// subscript, infix union) and re-rendered; inputs outside the grammar
// go through an ordered pattern-substitution fallback instead, so
// Normalize is total over string inputs.
package typeexpr

// Node is a node in the type expression syntax tree. The node set is
// closed: Name, Qualified, Subscript, Literal and Union are the only
// implementations.
type Node interface {
	node()
}

// Name is a bare identifier such as a built-in or class name.
type Name struct {
	Ident string
}

// Qualified is a dotted chain of identifiers. Canonical rendering
// keeps only the final segment.
type Qualified struct {
	Chain []string
}

// Subscript is a generic type application, e.g. a container with
// element types. Argument order is significant.
type Subscript struct {
	Base Node
	Args []Node
}

// Literal is a constant appearing inside an expression. Text holds
// the source-faithful representation, including quotes for strings.
type Literal struct {
	Text string
}

// Union is a binary union of two type expressions. Chains associate
// left to right.
type Union struct {
	Left  Node
	Right Node
}

func (Name) node()      {}
func (Qualified) node() {}
func (Subscript) node() {}
func (Literal) node()   {}
func (Union) node()     {}
