package generator

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixture = `package web

//routegen:router name=Route
type (
	//routegen:get /health
	Health struct{}
)
`

func TestGeneratorEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "routes.go")
	require.NoError(t, os.WriteFile(input, []byte(fixture), 0o644))

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	gen := New("httprouter", logger)
	require.NoError(t, gen.Generate(input, ""))

	out, err := os.ReadFile(filepath.Join(dir, "routes_routegen.go"))
	require.NoError(t, err)
	require.Contains(t, string(out), "func RouteURL(r Route) string")
	require.Contains(t, string(out), "func RouteMethod(r Route) string")
	require.Contains(t, string(out), "func RouteRouter(state struct{}) *httprouter.Router")
}

func TestGeneratorUnsupportedTarget(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	gen := New("gin", logger)
	err := gen.Generate("routes.go", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported target")
}

func TestGeneratorWritesNothingOnScanError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "routes.go")
	bad := `package web

//routegen:router
type (
	Untagged struct{}
)
`
	require.NoError(t, os.WriteFile(input, []byte(bad), 0o644))

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	err := New("httprouter", logger).Generate(input, "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing route directive")

	_, statErr := os.Stat(filepath.Join(dir, "routes_routegen.go"))
	require.True(t, os.IsNotExist(statErr))
}

func TestDefaultOutput(t *testing.T) {
	require.Equal(t, "a/routes_routegen.go", DefaultOutput("a/routes.go"))
}
