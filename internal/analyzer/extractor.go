package analyzer

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
)

// FuncInfo holds a function signature recovered from source.
type FuncInfo struct {
	Name    string
	Doc     string
	Params  []ParamInfo
	Results []string // raw result type expressions
}

// ParamInfo is one parameter as written in the source. Type holds the
// element type expression; pointer stars and variadic ellipses are
// recorded as flags instead.
type ParamInfo struct {
	Name     string
	Type     string
	Variadic bool
	Pointer  bool
}

// TypeInfo holds a struct type declaration and its fields.
type TypeInfo struct {
	Name   string
	Doc    string
	Fields []FieldInfo
}

// FieldInfo is one struct field with its validate tag, if any.
type FieldInfo struct {
	Name        string
	Type        string
	Doc         string
	ValidateTag string
}

// Extractor parses Go source files and indexes exported functions and
// struct types for later lookup by name.
type Extractor struct {
	funcs map[string]FuncInfo
	types map[string]TypeInfo
}

// NewExtractor allocates a new instance.
func NewExtractor() *Extractor {
	return &Extractor{
		funcs: map[string]FuncInfo{},
		types: map[string]TypeInfo{},
	}
}

// ParseDirectory walks through the provided directory (recursively)
// and parses every Go file it finds. It ignores vendor directories.
func (e *Extractor) ParseDirectory(dir string) error {
	fset := token.NewFileSet()
	return filepath.WalkDir(dir, func(path string, de os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		return e.processDirectoryEntry(path, de, fset)
	})
}

func (e *Extractor) processDirectoryEntry(path string, de os.DirEntry, fset *token.FileSet) error {
	if !de.IsDir() {
		return nil
	}
	if de.Name() == "vendor" {
		return filepath.SkipDir
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}
		filePath := filepath.Join(path, entry.Name())
		if err := e.parseFile(filePath, fset); err != nil {
			// Skip files that fail to parse
			continue
		}
	}

	return nil
}

func (e *Extractor) parseFile(filePath string, fset *token.FileSet) error {
	file, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
	if err != nil {
		return err
	}

	ast.Inspect(file, e.inspectNode)
	return nil
}

func (e *Extractor) inspectNode(n ast.Node) bool {
	switch decl := n.(type) {
	case *ast.GenDecl:
		e.processGenDecl(decl)
	case *ast.FuncDecl:
		e.processFuncDecl(decl)
	}
	return true
}

func (e *Extractor) processGenDecl(decl *ast.GenDecl) {
	if decl.Tok != token.TYPE {
		return
	}
	for _, spec := range decl.Specs {
		if ts, ok := spec.(*ast.TypeSpec); ok {
			e.processTypeSpec(ts, decl.Doc)
		}
	}
}

func (e *Extractor) processTypeSpec(ts *ast.TypeSpec, docComment *ast.CommentGroup) {
	st, ok := ts.Type.(*ast.StructType)
	if !ok || !ast.IsExported(ts.Name.Name) {
		return
	}

	info := TypeInfo{Name: ts.Name.Name}
	if docComment != nil {
		info.Doc = docComment.Text()
	}

	for _, fld := range st.Fields.List {
		typeStr := types.ExprString(fld.Type)
		doc := fieldDescription(fld)
		tag := validateTagOf(fld)
		for _, ident := range fld.Names {
			info.Fields = append(info.Fields, FieldInfo{
				Name:        ident.Name,
				Type:        typeStr,
				Doc:         doc,
				ValidateTag: tag,
			})
		}
	}

	e.types[info.Name] = info
}

func fieldDescription(fld *ast.Field) string {
	if fld.Doc != nil {
		return strings.TrimSpace(fld.Doc.Text())
	}
	if fld.Comment != nil {
		return strings.TrimSpace(fld.Comment.Text())
	}
	return ""
}

func validateTagOf(fld *ast.Field) string {
	if fld.Tag == nil {
		return ""
	}
	tagVal := strings.Trim(fld.Tag.Value, "`")
	return reflect.StructTag(tagVal).Get("validate")
}

func (e *Extractor) processFuncDecl(decl *ast.FuncDecl) {
	// Methods and unexported functions are not part of the surface
	// being documented.
	if decl.Recv != nil || !ast.IsExported(decl.Name.Name) {
		return
	}

	info := FuncInfo{Name: decl.Name.Name}
	if decl.Doc != nil {
		info.Doc = decl.Doc.Text()
	}

	for _, fld := range decl.Type.Params.List {
		p := paramOf(fld.Type)
		for _, ident := range fld.Names {
			p.Name = ident.Name
			info.Params = append(info.Params, p)
		}
	}
	if decl.Type.Results != nil {
		for _, fld := range decl.Type.Results.List {
			info.Results = append(info.Results, types.ExprString(fld.Type))
		}
	}

	e.funcs[info.Name] = info
}

// paramOf splits pointer stars and variadic ellipses off a parameter
// type expression.
func paramOf(expr ast.Expr) ParamInfo {
	var p ParamInfo
	if ell, ok := expr.(*ast.Ellipsis); ok {
		p.Variadic = true
		expr = ell.Elt
	}
	if star, ok := expr.(*ast.StarExpr); ok {
		p.Pointer = true
		expr = star.X
	}
	p.Type = types.ExprString(expr)
	return p
}

// Lookup returns the extracted signature for the given function name.
func (e *Extractor) Lookup(name string) (FuncInfo, bool) {
	fi, ok := e.funcs[name]
	return fi, ok
}

// LookupType returns the extracted struct type for the given name.
func (e *Extractor) LookupType(name string) (TypeInfo, bool) {
	ti, ok := e.types[name]
	return ti, ok
}

// FuncNames returns all indexed function names, sorted.
func (e *Extractor) FuncNames() []string {
	names := make([]string, 0, len(e.funcs))
	for name := range e.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TypeNames returns all indexed struct type names, sorted.
func (e *Extractor) TypeNames() []string {
	names := make([]string, 0, len(e.types))
	for name := range e.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
