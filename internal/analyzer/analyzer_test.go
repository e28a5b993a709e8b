package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson206/func-analyzer/pkg/docstring"
)

func writeFixture(t *testing.T, name, src string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	return dir
}

func TestAnalyzeDirectory_Functions(t *testing.T) {
	src := `package fixtures

// CreateUser creates a user record.
//
// Args:
//     name: Full name of the user.
//     age: Age in years.
//     opts: Optional creation settings.
//     tags: Optional labels.
func CreateUser(name string, age int, opts *settings.Options, tags ...string) (context.Context, error) {
	return nil, nil
}
`
	dir := writeFixture(t, "fixture.go", src)

	report, err := New(docstring.StyleAuto).AnalyzeDirectory(dir)
	require.NoError(t, err)
	require.Len(t, report.Functions, 1)

	fn := report.Functions[0]
	assert.Equal(t, "CreateUser", fn.Name)
	assert.Equal(t, "CreateUser creates a user record.", fn.Description)
	assert.Equal(t, []string{"Context", "error"}, fn.Returns)

	require.Len(t, fn.Params, 4)

	assert.Equal(t, "name", fn.Params[0].Name)
	assert.Equal(t, "string", fn.Params[0].Type)
	assert.Equal(t, "Full name of the user.", fn.Params[0].Description)
	assert.True(t, fn.Params[0].Required)

	assert.Equal(t, "age", fn.Params[1].Name)
	assert.Equal(t, "int", fn.Params[1].Type)
	assert.True(t, fn.Params[1].Required)

	// Pointer parameters are optional and lose their qualifier.
	assert.Equal(t, "opts", fn.Params[2].Name)
	assert.Equal(t, "Options", fn.Params[2].Type)
	assert.False(t, fn.Params[2].Required)

	// Variadic parameters are optional.
	assert.Equal(t, "tags", fn.Params[3].Name)
	assert.Equal(t, "string", fn.Params[3].Type)
	assert.False(t, fn.Params[3].Required)
	assert.Equal(t, "Optional labels.", fn.Params[3].Description)
}

func TestAnalyzeDirectory_Types(t *testing.T) {
	src := `package fixtures

// Widget is a catalog entry.
type Widget struct {
	// Name is the display name.
	Name  string  ` + "`validate:\"required,min=3,max=40\"`" + `
	Color string  ` + "`validate:\"oneof=red green blue\"`" + `
	Price float64 ` + "`validate:\"gte=0\"`" + `
}

type hidden struct {
	x int
}
`
	dir := writeFixture(t, "types.go", src)

	report, err := New(docstring.StyleAuto).AnalyzeDirectory(dir)
	require.NoError(t, err)
	require.Len(t, report.Types, 1)

	wt := report.Types[0]
	assert.Equal(t, "Widget", wt.Name)
	assert.Equal(t, "Widget is a catalog entry.", wt.Description)
	require.Len(t, wt.Fields, 3)

	name := wt.Fields[0]
	assert.Equal(t, "Name", name.Name)
	assert.Equal(t, "Name is the display name.", name.Description)
	assert.True(t, name.Required)
	require.NotNil(t, name.Constraints)
	require.NotNil(t, name.Constraints.MinLength)
	assert.Equal(t, 3, *name.Constraints.MinLength)
	require.NotNil(t, name.Constraints.MaxLength)
	assert.Equal(t, 40, *name.Constraints.MaxLength)

	color := wt.Fields[1]
	assert.False(t, color.Required)
	require.NotNil(t, color.Constraints)
	assert.Equal(t, []string{"red", "green", "blue"}, color.Constraints.Enum)

	price := wt.Fields[2]
	require.NotNil(t, price.Constraints)
	require.NotNil(t, price.Constraints.Minimum)
	assert.Equal(t, 0.0, *price.Constraints.Minimum)
}

func TestAnalyzeDirectory_SkipsMethodsAndUnexported(t *testing.T) {
	src := `package fixtures

type box struct{}

// Open opens the box.
func (b *box) Open() {}

func helper() {}

// Exported does something visible.
func Exported() {}
`
	dir := writeFixture(t, "funcs.go", src)

	report, err := New(docstring.StyleAuto).AnalyzeDirectory(dir)
	require.NoError(t, err)
	require.Len(t, report.Functions, 1)
	assert.Equal(t, "Exported", report.Functions[0].Name)
}

func TestAnalyzeDirectory_SphinxDoc(t *testing.T) {
	src := `package fixtures

// Resize scales an image.
//
// :param width: Target width in pixels.
// :param height: Target height in pixels.
func Resize(width, height int) {}
`
	dir := writeFixture(t, "resize.go", src)

	report, err := New(docstring.StyleSphinx).AnalyzeDirectory(dir)
	require.NoError(t, err)
	require.Len(t, report.Functions, 1)

	fn := report.Functions[0]
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "Target width in pixels.", fn.Params[0].Description)
	assert.Equal(t, "Target height in pixels.", fn.Params[1].Description)
}

func TestAnalyzeDirectory_MissingDir(t *testing.T) {
	_, err := New(docstring.StyleAuto).AnalyzeDirectory(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
