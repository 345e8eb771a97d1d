package golang

import (
	"go/parser"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/afiqzx/routegen/internal/codegen/meta"
)

func blogSchema() meta.RouteSchema {
	return meta.RouteSchema{
		Name:  "Route",
		State: "*App",
		Variants: []meta.RouteVariant{
			{Name: "ListPosts", Method: "get", Path: "/posts", Shape: meta.ShapeUnit},
			{Name: "GetPost", Method: "get", Path: "/posts/:id", Shape: meta.ShapePositional, Fields: []string{"ID"}},
			{Name: "Search", Method: "get", Path: "/search", Shape: meta.ShapeNamed, Fields: []string{"q", "page"}},
			{Name: "Assets", Method: "get", Path: "/*file", Shape: meta.ShapeUnit},
		},
		Assets: &meta.EmbeddedAssets{Variant: "Assets", Folder: "dist"},
	}
}

func TestURLExpr(t *testing.T) {
	cases := []struct {
		name string
		v    meta.RouteVariant
		want string
	}{
		{
			name: "unit variant returns the literal path",
			v:    meta.RouteVariant{Name: "Health", Path: "/health", Shape: meta.ShapeUnit},
			want: `"/health"`,
		},
		{
			name: "positional fields substitute placeholders in order",
			v:    meta.RouteVariant{Name: "GetItem", Path: "/items/:id", Shape: meta.ShapePositional, Fields: []string{"ID"}},
			want: `fmt.Sprintf("/items/%v", v.ID)`,
		},
		{
			name: "placeholder names are ignored for positional mapping",
			v:    meta.RouteVariant{Name: "Move", Path: "/move/:from/:to", Shape: meta.ShapePositional, Fields: []string{"B", "A"}},
			want: `fmt.Sprintf("/move/%v/%v", v.B, v.A)`,
		},
		{
			name: "named fields render as a query string with diagnostic formatting",
			v:    meta.RouteVariant{Name: "Search", Path: "/search", Shape: meta.ShapeNamed, Fields: []string{"a", "b"}},
			want: `fmt.Sprintf("/search?a=%#v&b=%#v", v.a, v.b)`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, urlExpr(tc.v))
		})
	}
}

func TestMuxPattern(t *testing.T) {
	require.Equal(t, "/posts/{id}", muxPattern("/posts/:id"))
	require.Equal(t, "/{file:.*}", muxPattern("/*file"))
	require.Equal(t, "/posts", muxPattern("/posts"))
}

func TestRenderHTTPRouterTarget(t *testing.T) {
	src, err := render("blog", []meta.RouteSchema{blogSchema()}, Targets["httprouter"])
	require.NoError(t, err)
	text := string(src)

	// Output must be valid Go.
	fset := token.NewFileSet()
	_, err = parser.ParseFile(fset, "blog_routegen.go", src, parser.ParseComments)
	require.NoError(t, err)

	require.Contains(t, text, "// Code generated by routegen. DO NOT EDIT.")
	require.Contains(t, text, "type Route interface{ isRoute() }")
	require.Contains(t, text, `return "/posts"`)
	require.Contains(t, text, `return fmt.Sprintf("/posts/%v", v.ID)`)
	require.Contains(t, text, `return fmt.Sprintf("/search?q=%#v&page=%#v", v.q, v.page)`)
	require.Contains(t, text, `return "get"`)
	require.Contains(t, text, "func RouteRouter(state *App) *httprouter.Router")
	require.Contains(t, text, `r.Handler(http.MethodGet, "/posts/:id", get_post(state))`)
	require.Contains(t, text, `r.Handler(http.MethodGet, "/*file", assets(state))`)
	require.Contains(t, text, "func (v GetPost) String() string")
	require.Contains(t, text, "return RouteURL(v)")
	require.Contains(t, text, "//go:embed dist")
	require.Contains(t, text, "var assets_files embed.FS")
	require.Contains(t, text, `"text/html; charset=utf-8"`)
	require.Contains(t, text, `"not found"`)

	// One registration per variant, in declaration order.
	require.Equal(t, 4, strings.Count(text, "r.Handler("))
	first := strings.Index(text, `r.Handler(http.MethodGet, "/posts",`)
	second := strings.Index(text, `r.Handler(http.MethodGet, "/posts/:id"`)
	third := strings.Index(text, `r.Handler(http.MethodGet, "/search"`)
	fourth := strings.Index(text, `r.Handler(http.MethodGet, "/*file"`)
	require.True(t, first < second && second < third && third < fourth)
}

func TestRenderMuxTarget(t *testing.T) {
	src, err := render("blog", []meta.RouteSchema{blogSchema()}, Targets["mux"])
	require.NoError(t, err)
	text := string(src)

	require.Contains(t, text, "func RouteRouter(state *App) *mux.Router")
	require.Contains(t, text, `r.Handle("/posts/{id}", get_post(state)).Methods(http.MethodGet)`)
	require.Contains(t, text, `r.Handle("/{file:.*}", assets(state)).Methods(http.MethodGet)`)
	require.Contains(t, text, `"github.com/gorilla/mux"`)
	require.NotContains(t, text, "httprouter")
}

func TestRenderWithoutAssets(t *testing.T) {
	schema := meta.RouteSchema{
		Name:  "API",
		State: "struct{}",
		Variants: []meta.RouteVariant{
			{Name: "Health", Method: "get", Path: "/health", Shape: meta.ShapeUnit},
		},
	}
	src, err := render("api", []meta.RouteSchema{schema}, Targets["httprouter"])
	require.NoError(t, err)
	text := string(src)

	require.Contains(t, text, "func APIRouter(state struct{}) *httprouter.Router")
	require.NotContains(t, text, "embed.FS")
	require.NotContains(t, text, `"mime"`)
	// All variants are unit, so the URL switch must not bind a value.
	require.Contains(t, text, "switch r.(type) {")
}

func TestGenerateWritesOnlyOnChange(t *testing.T) {
	out := filepath.Join(t.TempDir(), "api_routegen.go")
	schemas := []meta.RouteSchema{blogSchema()}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	require.NoError(t, Generate(logger, out, "blog", schemas, Targets["httprouter"]))
	info, err := os.Stat(out)
	require.NoError(t, err)
	firstMod := info.ModTime()

	require.NoError(t, Generate(logger, out, "blog", schemas, Targets["httprouter"]))
	info, err = os.Stat(out)
	require.NoError(t, err)
	require.Equal(t, firstMod, info.ModTime())
}
