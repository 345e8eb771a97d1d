package golang

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/afiqzx/routegen/internal/codegen/common"
	"github.com/afiqzx/routegen/internal/codegen/meta"
)

const fileTemplate = `// Code generated by routegen. DO NOT EDIT.

package {{.Package}}

{{.ImportBlock}}
{{range $s := .Schemas}}
// {{$s.Name}} is implemented by every route variant of the annotated group.
type {{$s.Name}} interface{ {{$s.Marker}}() }

{{range $v := $s.Variants}}func ({{$v.Name}}) {{$s.Marker}}() {}
{{end}}
// {{$s.Name}}URL renders the URL for r: positional fields substitute path
// placeholders in declaration order, named fields serialize as a query
// string.
func {{$s.Name}}URL(r {{$s.Name}}) string {
	switch {{if $s.BindURL}}v := r.(type){{else}}r.(type){{end}} {
	{{range $v := $s.Variants}}{{$v.Case}}
		return {{$v.URLExpr}}
	{{end}}default:
		panic(fmt.Sprintf("unknown route %T", r))
	}
}

// {{$s.Name}}Method returns the lowercase HTTP method keyword for r.
func {{$s.Name}}Method(r {{$s.Name}}) string {
	switch r.(type) {
	{{range $v := $s.Variants}}{{$v.Case}}
		return {{$v.MethodLit}}
	{{end}}default:
		panic(fmt.Sprintf("unknown route %T", r))
	}
}

// {{$s.Name}}Router builds the route table, one registration per variant in
// declaration order. Handlers are package-level functions named after each
// variant.
func {{$s.Name}}Router(state {{$s.State}}) {{$s.RouterType}} {
	r := {{$s.Constructor}}
	{{range $reg := $s.Registrations}}{{$reg}}
	{{end}}return r
}

{{range $v := $s.Variants}}func (v {{$v.Name}}) String() string { return {{$s.Name}}URL(v) }
{{end}}
{{- if $s.Assets}}
//go:embed {{$s.Assets.Folder}}
var {{$s.Assets.FSVar}} embed.FS

func {{$s.Assets.Handler}}(_ {{$s.State}}) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		name := path.Join({{quote $s.Assets.Folder}}, strings.TrimPrefix(req.URL.Path, "/"))
		data, err := {{$s.Assets.FSVar}}.ReadFile(name)
		if err != nil {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("not found"))
			return
		}
		ctype := mime.TypeByExtension(path.Ext(name))
		if ctype == "" {
			ctype = http.DetectContentType(data)
		}
		w.Header().Set("Content-Type", ctype)
		_, _ = w.Write(data)
	})
}
{{- end}}
{{end}}`

var tmpl = template.Must(template.New("routegen").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(fileTemplate))

type fileData struct {
	Package     string
	ImportBlock string
	Schemas     []schemaData
}

type schemaData struct {
	Name          string
	Marker        string
	State         string
	BindURL       bool
	RouterType    string
	Constructor   string
	Variants      []variantData
	Registrations []string
	Assets        *assetData
}

type variantData struct {
	Name      string
	Case      string
	URLExpr   string
	MethodLit string
}

type assetData struct {
	Folder  string
	Handler string
	FSVar   string
}

// render produces the gofmt'd source of the generated file.
func render(pkg string, schemas []meta.RouteSchema, target Target) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, buildFileData(pkg, schemas, target)); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}

func buildFileData(pkg string, schemas []meta.RouteSchema, target Target) fileData {
	hasAssets := false
	out := fileData{Package: pkg}

	for _, schema := range schemas {
		d := schemaData{
			Name:        schema.Name,
			Marker:      "is" + schema.Name,
			State:       schema.State,
			RouterType:  target.RouterType,
			Constructor: target.Constructor,
		}

		for _, v := range schema.Variants {
			if len(v.Fields) > 0 {
				d.BindURL = true
			}
			d.Variants = append(d.Variants, variantData{
				Name:      v.Name,
				Case:      caseClause(v),
				URLExpr:   urlExpr(v),
				MethodLit: strconv.Quote(v.Method),
			})
			handler := common.PascalToSnake(v.Name) + "(state)"
			d.Registrations = append(d.Registrations, target.Register(target.Pattern(v.Path), v.Method, handler))
		}

		if schema.Assets != nil {
			hasAssets = true
			d.Assets = &assetData{
				Folder:  schema.Assets.Folder,
				Handler: common.PascalToSnake(schema.Assets.Variant),
				FSVar:   common.PascalToSnake(schema.Assets.Variant) + "_files",
			}
		}

		out.Schemas = append(out.Schemas, d)
	}

	out.ImportBlock = importBlock(hasAssets, target)
	return out
}

// importBlock renders the import declaration: standard library first, the
// router package in its own group. go/format does not regroup imports, so
// the grouping is laid out here.
func importBlock(hasAssets bool, target Target) string {
	std := []string{"fmt", "net/http"}
	if hasAssets {
		std = append(std, "embed", "mime", "path", "strings")
	}
	sort.Strings(std)

	var b strings.Builder
	b.WriteString("import (\n")
	for _, imp := range std {
		b.WriteString("\t" + strconv.Quote(imp) + "\n")
	}
	b.WriteString("\n\t" + strconv.Quote(target.ImportPath) + "\n")
	b.WriteString(")")
	return b.String()
}
