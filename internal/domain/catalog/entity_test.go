package catalog

import "testing"

func TestParseIcon(t *testing.T) {
	cases := []struct {
		in   string
		want Icon
	}{
		{"code", IconCode},
		{"design", IconDesign},
		{"analytics", IconAnalytics},
		{"default", IconDefault},
		{"", IconDefault},
		{"sparkles", IconDefault},
		{"CODE", IconDefault},
	}

	for _, c := range cases {
		if got := ParseIcon(c.in); got != c.want {
			t.Errorf("ParseIcon(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
