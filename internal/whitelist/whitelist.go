// Package whitelist decides whether a page URL is exempt from scanning.
package whitelist

import (
	"net/url"
	"strings"
)

// IsWhitelisted reports whether rawURL matches any entry. An entry matches when
// the URL contains it, when the URL's host equals it or is a subdomain of it,
// or, for "host/path" entries, when the host matches and the path starts with
// the entry's path. Matching is case-insensitive and a leading "www." on the
// URL's host is ignored. Blank entries never match.
func IsWhitelisted(rawURL string, entries []string) bool {
	full := strings.ToLower(rawURL)
	host, path := split(rawURL)

	for _, entry := range entries {
		item := strings.ToLower(strings.TrimSpace(entry))
		if item == "" {
			continue
		}

		if strings.Contains(full, item) {
			return true
		}

		if hostMatches(host, item) {
			return true
		}

		if domain, prefix, ok := strings.Cut(item, "/"); ok {
			if hostMatches(host, domain) && strings.HasPrefix(path, "/"+prefix) {
				return true
			}
		}
	}

	return false
}

func hostMatches(host, domain string) bool {
	if host == "" || domain == "" {
		return false
	}
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// split returns the lowercased host without "www." and the path plus query.
func split(rawURL string) (host, path string) {
	s := strings.TrimSpace(rawURL)
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", ""
	}

	host = strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	path = u.EscapedPath()
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return host, path
}

// NormalizeEntry lowercases an entry and strips a scheme, a leading "www." and
// trailing slashes so stored entries compare consistently.
func NormalizeEntry(entry string) string {
	e := strings.ToLower(strings.TrimSpace(entry))
	if _, rest, ok := strings.Cut(e, "://"); ok {
		e = rest
	}
	e = strings.TrimPrefix(e, "www.")
	return strings.TrimRight(e, "/")
}
