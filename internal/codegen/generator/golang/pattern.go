package golang

import "github.com/afiqzx/routegen/internal/codegen/meta"

// caseClause returns the type-switch case matching one variant. The URL and
// method switches both use this, so their arms stay structurally identical
// in clause and order.
func caseClause(v meta.RouteVariant) string {
	return "case " + v.Name + ":"
}

// caseArgs returns the bound-field selectors for one variant in declaration
// order. A Go type switch binds the whole value, so index-ordered selectors
// stand in for per-field pattern bindings: selector i fills substitution
// marker i for positional variants, and query pair i for named variants.
func caseArgs(v meta.RouteVariant) []string {
	args := make([]string, len(v.Fields))
	for i, field := range v.Fields {
		args[i] = "v." + field
	}
	return args
}
