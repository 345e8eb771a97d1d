package meta

// FieldShape classifies the payload a route variant carries.
type FieldShape int

const (
	// ShapeUnit is a variant with no fields; its path is emitted verbatim.
	ShapeUnit FieldShape = iota
	// ShapePositional is a variant whose fields fill path placeholders in
	// declaration order.
	ShapePositional
	// ShapeNamed is a variant whose fields are serialized as a query string.
	ShapeNamed
)

func (s FieldShape) String() string {
	switch s {
	case ShapeUnit:
		return "unit"
	case ShapePositional:
		return "positional"
	case ShapeNamed:
		return "named"
	}
	return "unknown"
}

// RouteVariant describes one route of a schema.
type RouteVariant struct {
	Name   string     // variant type name, e.g. "GetPost"
	Method string     // lowercase directive keyword: get, post, put, patch, delete
	Path   string     // path template, e.g. "/posts/:id"
	Shape  FieldShape //
	Fields []string   // field names in declaration order
}

// EmbeddedAssets designates the static-asset catch-all variant.
type EmbeddedAssets struct {
	Variant string // name of the designated variant
	Folder  string // folder embedded into the binary, default "static"
}

// RouteSchema is the normalized model of one annotated type group.
// All fields are fixed once the scanner returns; nothing downstream
// mutates them.
type RouteSchema struct {
	Name     string // generated interface name and function prefix
	State    string // Go type expression threaded through the router signature
	Variants []RouteVariant
	Assets   *EmbeddedAssets // nil when no variant carries the embed directive
}
