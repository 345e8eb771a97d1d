package common

import "testing"

func TestPascalToSnake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"GetUser", "get_user"},
		{"GetAllUsers", "get_all_users"},
		{"Health", "health"},
		{"A", "a"},
		{"", ""},
		{"already_snake", "already_snake"},
		// Acronym runs split per character on purpose.
		{"HTTPServer", "h_t_t_p_server"},
		{"ListPostsV2", "list_posts_v2"},
	}

	for _, c := range cases {
		if got := PascalToSnake(c.in); got != c.want {
			t.Errorf("PascalToSnake(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPascalToSnakeIdempotentOnLowercase(t *testing.T) {
	for _, s := range []string{"health", "get_user", "x0"} {
		if got := PascalToSnake(s); got != s {
			t.Errorf("PascalToSnake(%q) = %q, expected fixpoint", s, got)
		}
	}
}
