package leads

import "strings"

// ExtractDomain strips one leading "https://" or "http://" from a website URL
// and drops everything from the first "/" on. It returns "" for a blank
// website.
func ExtractDomain(website string) string {
	d := strings.TrimSpace(website)
	if rest, ok := strings.CutPrefix(d, "https://"); ok {
		d = rest
	} else if rest, ok := strings.CutPrefix(d, "http://"); ok {
		d = rest
	}
	d, _, _ = strings.Cut(d, "/")
	return d
}
