package crawler

import (
	"net/url"
	"strings"
)

// IsFetchable reports whether link is an absolute http(s) URL with a host
func IsFetchable(link string) bool {
	link = strings.TrimSpace(link)
	if link == "" {
		return false
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return false
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return false
	}
	return parsed.Hostname() != ""
}

// FilterLinks loads fetchable links into a new frontier, keeping the first
// occurrence of each URL in document order
func FilterLinks(links []string) *Frontier {
	frontier := NewFrontier()
	for _, link := range links {
		// Skip mailto:, javascript:, empty hrefs
		if !IsFetchable(link) {
			continue
		}
		frontier.Push(link)
	}
	return frontier
}
