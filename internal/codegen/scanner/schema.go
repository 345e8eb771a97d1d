// Package scanner locates annotated route declarations in a Go source file
// and builds the normalized route model consumed by the generators.
//
// A route schema is a grouped type declaration whose doc comment carries a
// //routegen:router directive. Every TypeSpec inside the group is one route
// variant; its doc comment carries the method/path directives:
//
//	//routegen:router name=Route state=*App
//	type (
//		//routegen:get /posts/:id
//		GetPost struct {
//			ID int64 `route:"path"`
//		}
//	)
package scanner

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strconv"
	"strings"

	"github.com/afiqzx/routegen/internal/codegen/meta"
)

const directivePrefix = "//routegen:"

// defaultFolder is used when a folder directive carries no parseable argument.
const defaultFolder = "static"

var httpMethods = map[string]bool{
	"get":    true,
	"post":   true,
	"put":    true,
	"patch":  true,
	"delete": true,
}

// ScanFile parses the file at path and returns every route schema declared in
// it, plus the file's package name. Scanning is pure: nothing is written and
// no state survives the call.
func ScanFile(path string) ([]meta.RouteSchema, string, error) {
	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, "", fmt.Errorf("parse file: %w", err)
	}

	var schemas []meta.RouteSchema
	for _, decl := range node.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		args, ok := routerDirective(genDecl.Doc)
		if !ok {
			continue
		}
		schema, err := buildSchema(args, genDecl)
		if err != nil {
			return nil, "", err
		}
		schemas = append(schemas, *schema)
	}

	if len(schemas) == 0 {
		return nil, "", fmt.Errorf("%s: no %srouter declaration found", path, directivePrefix)
	}
	return schemas, node.Name.Name, nil
}

// routerDirective returns the argument text of the //routegen:router line in
// doc, if present.
func routerDirective(doc *ast.CommentGroup) (string, bool) {
	if doc == nil {
		return "", false
	}
	for _, c := range doc.List {
		key, rest, ok := directive(c)
		if ok && key == "router" {
			return rest, true
		}
	}
	return "", false
}

// directive splits a //routegen:<key> [args...] comment line.
func directive(c *ast.Comment) (key, args string, ok bool) {
	text := strings.TrimPrefix(c.Text, directivePrefix)
	if text == c.Text {
		return "", "", false
	}
	key, args, _ = strings.Cut(text, " ")
	return key, strings.TrimSpace(args), key != ""
}

// buildSchema combines the router directive arguments with the group's
// TypeSpecs into a RouteSchema.
func buildSchema(args string, genDecl *ast.GenDecl) (*meta.RouteSchema, error) {
	schema := &meta.RouteSchema{
		Name:  "Route",
		State: "struct{}",
	}

	for _, field := range strings.Fields(args) {
		k, v, _ := strings.Cut(field, "=")
		switch k {
		case "name":
			if v != "" {
				schema.Name = v
			}
		case "state":
			// An unparseable state expression silently keeps the empty type.
			if v != "" {
				if _, err := parser.ParseExpr(v); err == nil {
					schema.State = v
				}
			}
		}
	}

	var (
		embedVariant string
		folder       = defaultFolder
	)

	for _, spec := range genDecl.Specs {
		typeSpec, ok := spec.(*ast.TypeSpec)
		if !ok {
			continue
		}
		variant, isEmbed, variantFolder, err := buildVariant(typeSpec)
		if err != nil {
			return nil, err
		}
		schema.Variants = append(schema.Variants, variant)
		if isEmbed {
			// Multiple embed directives: the later declaration wins.
			embedVariant = variant.Name
		}
		if variantFolder != "" {
			folder = variantFolder
		}
	}

	if embedVariant != "" {
		schema.Assets = &meta.EmbeddedAssets{Variant: embedVariant, Folder: folder}
	}
	return schema, nil
}

// buildVariant derives one RouteVariant from a TypeSpec: the (method, path)
// pair from its doc directives and the field shape from its struct fields.
// folder is non-empty when the variant carries a folder directive.
func buildVariant(typeSpec *ast.TypeSpec) (variant meta.RouteVariant, isEmbed bool, folder string, err error) {
	name := typeSpec.Name.Name
	variant = meta.RouteVariant{Name: name}

	pairFound := false
	if typeSpec.Doc != nil {
		for _, c := range typeSpec.Doc.List {
			key, rest, ok := directive(c)
			if !ok {
				continue
			}
			switch {
			case key == "router":
				// Schema-level marker, not route metadata.
			case key == "folder":
				if arg, ok := stringArg(rest); ok {
					folder = arg
				} else {
					folder = defaultFolder
				}
			case key == "embed":
				// The embed variant gets a synthesized catch-all route.
				isEmbed = true
				variant.Method, variant.Path = "get", "/*file"
				pairFound = true
			case httpMethods[key]:
				if arg, ok := stringArg(rest); ok {
					variant.Method, variant.Path = key, arg
				} else {
					variant.Method, variant.Path = "get", "/*file"
				}
				pairFound = true
			}
		}
	}

	if !pairFound {
		return variant, false, "", fmt.Errorf(
			"variant %s: missing route directive; expected %sget|post|put|patch|delete <path>, %sembed or %sfolder <path>",
			name, directivePrefix, directivePrefix, directivePrefix)
	}

	structType, ok := typeSpec.Type.(*ast.StructType)
	if !ok {
		return variant, false, "", fmt.Errorf("variant %s: must be a struct type", name)
	}
	shape, fields, err := fieldShape(name, structType)
	if err != nil {
		return variant, false, "", err
	}
	variant.Shape = shape
	variant.Fields = fields
	return variant, isEmbed, folder, nil
}

// stringArg extracts the single string argument of a directive. Quoted
// arguments are unquoted; a bare token is taken as-is. An empty or
// malformed argument reports ok=false.
func stringArg(rest string) (string, bool) {
	if rest == "" {
		return "", false
	}
	if strings.HasPrefix(rest, `"`) {
		s, err := strconv.Unquote(rest)
		if err != nil {
			return "", false
		}
		return s, true
	}
	return strings.Fields(rest)[0], true
}

// fieldShape classifies a variant's struct fields. Fields tagged
// route:"path" fill path placeholders positionally; untagged fields are
// serialized as a query string. The two cannot be mixed in one variant.
func fieldShape(variantName string, structType *ast.StructType) (meta.FieldShape, []string, error) {
	var (
		fields     []string
		pathTagged int
	)

	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			return 0, nil, fmt.Errorf("variant %s: embedded fields are not supported", variantName)
		}
		tagged := false
		if field.Tag != nil {
			tag := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
			tagged = tag.Get("route") == "path"
		}
		for _, ident := range field.Names {
			fields = append(fields, ident.Name)
			if tagged {
				pathTagged++
			}
		}
	}

	switch {
	case len(fields) == 0:
		return meta.ShapeUnit, nil, nil
	case pathTagged == len(fields):
		return meta.ShapePositional, fields, nil
	case pathTagged == 0:
		return meta.ShapeNamed, fields, nil
	default:
		return 0, nil, fmt.Errorf(
			"variant %s: mixes route:\"path\" fields with query fields; a variant is either all-positional or all-named",
			variantName)
	}
}
