package pilot

import "testing"

func TestGlobMatcher(t *testing.T) {
	cases := []struct {
		glob string
		url  string
		want bool
	}{
		{"https://example.com/*.png", "https://example.com/logo.png", true},
		{"https://example.com/*.png", "https://example.com/img/logo.png", false},
		{"https://example.com/**", "https://example.com/a/b/c", true},
		{"https://example.com/api/?", "https://example.com/api/1", true},
		{"https://example.com/api/?", "https://example.com/api/12", false},
		{"https://example.com/*", "https://other.com/", false},
	}
	for _, c := range cases {
		match := globMatcher(c.glob)
		if got := match(c.url); got != c.want {
			t.Errorf("globMatcher(%q)(%q) = %t, want %t", c.glob, c.url, got, c.want)
		}
	}
}

func TestHeaderEntries(t *testing.T) {
	entries := headerEntries(map[string]string{"X-Test": "1"})
	if len(entries) != 1 || entries[0].Name != "X-Test" || entries[0].Value != "1" {
		t.Errorf("headerEntries(...) = %+v, want a single {X-Test 1} entry", entries)
	}
}
