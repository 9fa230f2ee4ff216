package ident

import (
	"math/rand"
	"strings"
	"testing"
	"testing/quick"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"apache_app", "apache_app"},
		{"mariadb_app", "mariadb_app"},
		// Upper case folds, punctuation and spaces become underscores.
		{"My App!", "my_app_"},
		{"web.server", "web_server"},
		{"a-b_c", "a-b_c"},
		{"", ""},
		// One underscore per rune, not per byte.
		{"café", "caf_"},
		{"日本", "__"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Sanitize(tc.input), "Sanitize(%q)", tc.input)
	}
}

func checkSanitized(t *testing.T, in string) {
	t.Helper()
	got := Sanitize(in)
	for _, r := range got {
		ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-'
		assert.Truef(t, ok, "Sanitize(%q) = %q contains %q", in, got, r)
	}
	assert.Equal(t, got, Sanitize(got), "Sanitize not idempotent for %q", in)
	assert.Equal(t, utf8.RuneCountInString(strings.ToLower(in)), utf8.RuneCountInString(got), "rune count for %q", in)
}

var sanitizeSeeds = []string{
	"", " ", "ABC", "My App!", "x/y\\z", "tab\there", "ÅÄÖ", "emoji 🐳",
	"already-clean_01", "\x00\xff", "UPPER-lower_123", "İ", "ǅ", "K",
}

// TestSanitizeCharsetAndIdempotence checks that output stays inside
// [a-z0-9_-] and that a second pass changes nothing.
func TestSanitizeCharsetAndIdempotence(t *testing.T) {
	for _, in := range sanitizeSeeds {
		checkSanitized(t, in)
	}
}

func TestSanitizeRandomInputs(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	ranges := [][2]rune{{0, 0x7f}, {0x80, 0x24f}, {0x370, 0x52f}, {0x1f300, 0x1f6ff}}
	for i := 0; i < 2000; i++ {
		runes := make([]rune, r.Intn(24))
		for j := range runes {
			rg := ranges[r.Intn(len(ranges))]
			runes[j] = rg[0] + rune(r.Intn(int(rg[1]-rg[0]+1)))
		}
		checkSanitized(t, string(runes))
	}

	idempotent := func(s string) bool { return Sanitize(Sanitize(s)) == Sanitize(s) }
	assert.NoError(t, quick.Check(idempotent, &quick.Config{Rand: rand.New(rand.NewSource(43)), MaxCount: 1000}))
}

func FuzzSanitize(f *testing.F) {
	for _, s := range sanitizeSeeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, in string) {
		checkSanitized(t, in)
	})
}
