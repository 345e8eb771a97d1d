package common

import "strings"

// PascalToSnake converts a variant name to the handler-function name the
// generated router references: the first character is lowercased
// unconditionally, every later uppercase character is emitted as an
// underscore plus its lowercase form.
//
// Acronym runs are NOT collapsed ("HTTPServer" -> "h_t_t_p_server").
// Generated names in existing projects depend on this, so the transform
// must stay exactly as it is.
func PascalToSnake(input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)

	for i, r := range input {
		if i == 0 {
			b.WriteRune(toLowerRune(r))
			continue
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
