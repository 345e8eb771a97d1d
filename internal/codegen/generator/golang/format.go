package golang

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/afiqzx/routegen/internal/codegen/meta"
)

// urlExpr returns the Go expression the generated URL builder evaluates for
// one variant.
//
// Unit variants return the path literal. Positional variants rewrite every
// :seg placeholder to a %v marker left-to-right and fill the markers with
// the bound fields in declaration order; which name a placeholder carries is
// irrelevant. Named variants append ?a=%#v&b=%#v so that the query values
// keep their diagnostic rendering (strings stay quoted).
func urlExpr(v meta.RouteVariant) string {
	switch v.Shape {
	case meta.ShapePositional:
		parts := strings.Split(v.Path, "/")
		for i, part := range parts {
			if strings.HasPrefix(part, ":") {
				parts[i] = "%v"
			}
		}
		return sprintfExpr(strings.Join(parts, "/"), caseArgs(v))
	case meta.ShapeNamed:
		pairs := make([]string, len(v.Fields))
		for i, field := range v.Fields {
			pairs[i] = field + "=%#v"
		}
		return sprintfExpr(v.Path+"?"+strings.Join(pairs, "&"), caseArgs(v))
	default:
		return strconv.Quote(v.Path)
	}
}

func sprintfExpr(format string, args []string) string {
	return fmt.Sprintf("fmt.Sprintf(%s, %s)", strconv.Quote(format), strings.Join(args, ", "))
}
