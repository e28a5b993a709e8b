// Package analyzer derives parameter schemas from Go source: function
// signatures and doc comments are recovered with go/ast, parameter
// types are normalized to their canonical spelling, and descriptions
// come from the doc comment's parameter section.
package analyzer

import (
	"fmt"
	"strings"

	"github.com/crimson206/func-analyzer/pkg/docstring"
	"github.com/crimson206/func-analyzer/pkg/typeexpr"
)

// Analyzer synthesizes function and type schemas from a source tree.
type Analyzer struct {
	style docstring.Style
}

// New returns an Analyzer using the given docstring style tag.
func New(style docstring.Style) *Analyzer {
	return &Analyzer{style: style}
}

// AnalyzeDirectory parses every Go file under dir and returns the
// schema report for the exported functions and struct types found.
func (a *Analyzer) AnalyzeDirectory(dir string) (*Report, error) {
	ex := NewExtractor()
	if err := ex.ParseDirectory(dir); err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}
	return a.buildReport(ex), nil
}

func (a *Analyzer) buildReport(ex *Extractor) *Report {
	report := &Report{}
	for _, name := range ex.FuncNames() {
		fi, _ := ex.Lookup(name)
		report.Functions = append(report.Functions, a.functionSchema(fi))
	}
	for _, name := range ex.TypeNames() {
		ti, _ := ex.LookupType(name)
		report.Types = append(report.Types, a.typeSchema(ti))
	}
	return report
}

func (a *Analyzer) functionSchema(fi FuncInfo) FunctionSchema {
	descs := docstring.Extract(fi.Doc, a.style)

	fs := FunctionSchema{
		Name:        fi.Name,
		Description: firstParagraph(fi.Doc),
	}
	for _, p := range fi.Params {
		fs.Params = append(fs.Params, ParamSchema{
			Name:        p.Name,
			Type:        typeexpr.Normalize(p.Type),
			Description: descs[p.Name],
			// Variadic and pointer parameters accept an absent value.
			Required: !p.Variadic && !p.Pointer,
		})
	}
	for _, r := range fi.Results {
		fs.Returns = append(fs.Returns, typeexpr.Normalize(r))
	}
	return fs
}

func (a *Analyzer) typeSchema(ti TypeInfo) TypeSchema {
	ts := TypeSchema{
		Name:        ti.Name,
		Description: firstParagraph(ti.Doc),
	}
	for _, f := range ti.Fields {
		fieldType := typeexpr.Normalize(f.Type)
		c := &Constraints{}
		mapValidateTag(f.ValidateTag, fieldType, c)
		fs := FieldSchema{
			Name:        f.Name,
			Type:        fieldType,
			Description: f.Doc,
			Required:    isRequired(f.ValidateTag),
		}
		if !c.empty() {
			fs.Constraints = c
		}
		ts.Fields = append(ts.Fields, fs)
	}
	return ts
}

// firstParagraph returns the first paragraph (until a double newline)
// of a doc comment, with line breaks collapsed to spaces.
func firstParagraph(doc string) string {
	trimmed := strings.TrimSpace(doc)
	if trimmed == "" {
		return ""
	}
	paragraph := strings.Split(trimmed, "\n\n")[0]
	lines := strings.Split(paragraph, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}
