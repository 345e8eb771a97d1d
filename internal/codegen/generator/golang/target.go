package golang

import (
	"fmt"
	"strconv"
	"strings"
)

// Target describes one router flavor the emitter can produce a route table
// for. The pattern function rewrites the schema's path template into the
// router's native syntax; the register function renders one registration
// statement.
type Target struct {
	Name        string
	ImportPath  string
	ImportAlias string // package identifier of ImportPath
	RouterType  string
	Constructor string
	Pattern     func(path string) string
	Register    func(pattern, method, handler string) string
}

// Targets maps a target name to its router flavor, mirroring how language
// generators are registered by name.
var Targets = map[string]Target{
	// TODO: httprouter rejects a root catch-all ("/*file") registered next
	// to static sibling routes; the embed variant needs a scoped prefix
	// (e.g. /static/*file) on this target until that is lifted.
	"httprouter": {
		Name:        "httprouter",
		ImportPath:  "github.com/julienschmidt/httprouter",
		ImportAlias: "httprouter",
		RouterType:  "*httprouter.Router",
		Constructor: "httprouter.New()",
		// httprouter patterns are the template syntax: :id and /*file
		// register unchanged.
		Pattern: func(path string) string { return path },
		Register: func(pattern, method, handler string) string {
			return fmt.Sprintf("r.Handler(%s, %q, %s)", methodConst(method), pattern, handler)
		},
	},
	"mux": {
		Name:        "mux",
		ImportPath:  "github.com/gorilla/mux",
		ImportAlias: "mux",
		RouterType:  "*mux.Router",
		Constructor: "mux.NewRouter()",
		Pattern:     muxPattern,
		Register: func(pattern, method, handler string) string {
			return fmt.Sprintf("r.Handle(%q, %s).Methods(%s)", pattern, handler, methodConst(method))
		},
	},
}

// TargetNames returns the supported target names for error messages.
func TargetNames() []string {
	names := make([]string, 0, len(Targets))
	for name := range Targets {
		names = append(names, name)
	}
	return names
}

// muxPattern rewrites :seg placeholders to {seg} and a *seg catch-all to a
// {seg:.*} regexp segment.
func muxPattern(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		switch {
		case strings.HasPrefix(part, ":"):
			parts[i] = "{" + part[1:] + "}"
		case strings.HasPrefix(part, "*"):
			parts[i] = "{" + part[1:] + ":.*}"
		}
	}
	return strings.Join(parts, "/")
}

// methodConst maps a lowercase directive keyword to the net/http method
// constant used in registrations.
func methodConst(method string) string {
	switch method {
	case "get":
		return "http.MethodGet"
	case "post":
		return "http.MethodPost"
	case "put":
		return "http.MethodPut"
	case "patch":
		return "http.MethodPatch"
	case "delete":
		return "http.MethodDelete"
	}
	return strconv.Quote(strings.ToUpper(method))
}
