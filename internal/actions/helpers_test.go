package actions

import (
	"strings"
	"testing"

	"github.com/benchkit/benchkit-cli/internal/configs"
	"github.com/stretchr/testify/assert"
)

func TestGeneratePassword(t *testing.T) {
	charset := "_1234567890-ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	p1, err := generatePassword(20)
	assert.NoError(t, err)
	assert.Len(t, p1, 20)
	for _, r := range p1 {
		assert.True(t, strings.ContainsRune(charset, r), "unexpected character %q", r)
	}

	p2, err := generatePassword(20)
	assert.NoError(t, err)
	assert.NotEqual(t, p1, p2)

	empty, err := generatePassword(0)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestValidSiteName(t *testing.T) {
	tests := []struct {
		name string
		site string
		want bool
	}{
		{name: "simple host", site: "site1.local", want: true},
		{name: "bare label", site: "intranet", want: true},
		{name: "subdomains", site: "erp.eu.example.com", want: true},
		{name: "hyphenated", site: "my-shop.example.com", want: true},
		{name: "digits", site: "2nd.example.com", want: true},
		{name: "empty", site: "", want: false},
		{name: "uppercase", site: "Example.com", want: false},
		{name: "leading hyphen", site: "-bad.example.com", want: false},
		{name: "trailing hyphen", site: "bad-.example.com", want: false},
		{name: "leading dot", site: ".example.com", want: false},
		{name: "trailing dot", site: "example.com.", want: false},
		{name: "whitespace", site: "foo bar.com", want: false},
		{name: "shell metacharacters", site: "a;rm.example.com", want: false},
		{name: "label too long", site: strings.Repeat("a", 64) + ".com", want: false},
		{name: "name too long", site: strings.Repeat("a.", 130) + "com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidSiteName(tt.site))
		})
	}
}

func TestShellQuote(t *testing.T) {
	assert.Equal(t, "'plain'", shellQuote("plain"))
	assert.Equal(t, `'with space'`, shellQuote("with space"))
	assert.Equal(t, `'it'\''s'`, shellQuote("it's"))
}

func TestBenchCommand(t *testing.T) {
	cfg := &configs.BenchkitConfig{
		BenchUser: "frappe",
		BenchDir:  "frappe-bench",
	}

	got := benchCommand(cfg, "set-config -g dns_multitenant on")
	assert.Equal(t,
		`su - frappe -c 'cd /home/frappe/frappe-bench && bench set-config -g dns_multitenant on'`,
		got,
	)
}

func TestTrimHttpsPrefix(t *testing.T) {
	assert.Equal(t, "example.com", TrimHttpsPrefix("https://example.com"))
	assert.Equal(t, "example.com", TrimHttpsPrefix("http://example.com"))
	assert.Equal(t, "example.com", TrimHttpsPrefix("example.com"))
}
