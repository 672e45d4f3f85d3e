package whitelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWhitelisted(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		entries []string
		want    bool
	}{
		{
			name:    "exact host",
			url:     "https://example.com/page",
			entries: []string{"example.com"},
			want:    true,
		},
		{
			name:    "www is ignored",
			url:     "https://www.Example.com/",
			entries: []string{"example.com"},
			want:    true,
		},
		{
			name:    "subdomain",
			url:     "https://blog.example.com/post/1",
			entries: []string{"example.com"},
			want:    true,
		},
		{
			name:    "suffix that is not a subdomain",
			url:     "https://notexample.org/",
			entries: []string{"example.org/x"},
			want:    false,
		},
		{
			name:    "url contains entry",
			url:     "https://news.site.com/tech/ai-article",
			entries: []string{"ai-article"},
			want:    true,
		},
		{
			name:    "host and path prefix",
			url:     "https://www.linkedin.com/in/someone?trk=feed",
			entries: []string{"linkedin.com/in"},
			want:    true,
		},
		{
			name:    "path entry on subdomain",
			url:     "https://m.linkedin.com/in/someone",
			entries: []string{"linkedin.com/in/someone"},
			want:    true,
		},
		{
			name:    "path prefix does not match",
			url:     "https://www.linkedin.com/feed/",
			entries: []string{"linkedin.com/jobs"},
			want:    false,
		},
		{
			name:    "query counts as path",
			url:     "https://www.youtube.com/watch?v=abc",
			entries: []string{"youtube.com/watch?v=abc"},
			want:    true,
		},
		{
			name:    "case-insensitive entry",
			url:     "https://docs.python.org/3/",
			entries: []string{"  Docs.Python.ORG "},
			want:    true,
		},
		{
			name:    "url without scheme",
			url:     "github.com/golang/go",
			entries: []string{"github.com"},
			want:    true,
		},
		{
			name:    "blank entries never match",
			url:     "https://example.com",
			entries: []string{"", "   "},
			want:    false,
		},
		{
			name:    "no entries",
			url:     "https://example.com",
			entries: nil,
			want:    false,
		},
		{
			name:    "different host",
			url:     "https://medium.com/@someone",
			entries: []string{"substack.com"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWhitelisted(tt.url, tt.entries))
		})
	}
}

func TestNormalizeEntry(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Example.com", "example.com"},
		{"https://www.example.com/", "example.com"},
		{" linkedin.com/in/ ", "linkedin.com/in"},
		{"http://blog.example.com/path//", "blog.example.com/path"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEntry(tt.in))
		})
	}
}
