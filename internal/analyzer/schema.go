package analyzer

// Report is the full analysis output for a source tree.
type Report struct {
	Functions []FunctionSchema `json:"functions" yaml:"functions"`
	Types     []TypeSchema     `json:"types,omitempty" yaml:"types,omitempty"`
}

// FunctionSchema describes one analyzed function: canonical parameter
// types paired with descriptions recovered from its doc comment.
type FunctionSchema struct {
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Params      []ParamSchema `json:"params,omitempty" yaml:"params,omitempty"`
	Returns     []string      `json:"returns,omitempty" yaml:"returns,omitempty"`
}

// ParamSchema describes a single parameter.
type ParamSchema struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool   `json:"required" yaml:"required"`
}

// TypeSchema describes a struct type with per-field constraints.
type TypeSchema struct {
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []FieldSchema `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// FieldSchema describes a struct field.
type FieldSchema struct {
	Name        string       `json:"name" yaml:"name"`
	Type        string       `json:"type" yaml:"type"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool         `json:"required,omitempty" yaml:"required,omitempty"`
	Constraints *Constraints `json:"constraints,omitempty" yaml:"constraints,omitempty"`
}

// Constraints is the subset of schema constraints derivable from
// validate tags. Numeric bounds are pointers so that zero-valued
// bounds survive omitempty.
type Constraints struct {
	Format    string   `json:"format,omitempty" yaml:"format,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Minimum   *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum   *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	MinLength *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Enum      []string `json:"enum,omitempty" yaml:"enum,omitempty"`
}

func (c *Constraints) empty() bool {
	return c.Format == "" && c.Pattern == "" &&
		c.Minimum == nil && c.Maximum == nil &&
		c.MinLength == nil && c.MaxLength == nil &&
		len(c.Enum) == 0
}
