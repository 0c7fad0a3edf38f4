package scrape

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// MaxInsights is the most snippets returned for one page.
	MaxInsights = 3
	// MaxInsightLen is the longest snippet, in characters.
	MaxInsightLen = 200
	// MinParagraphLen is the length a paragraph must exceed to count.
	MinParagraphLen = 40
)

// Heuristic is one named extraction step. Run sees the insights found so far
// and returns the snippets it adds.
type Heuristic struct {
	Name string
	Run  func(doc *html.Node, found []string) []string
}

// DefaultHeuristics returns the extraction steps in the order they run.
func DefaultHeuristics() []Heuristic {
	return []Heuristic{
		{Name: "meta_description", Run: metaDescription},
		SectionHeuristic("about"),
		SectionHeuristic("product"),
		SectionHeuristic("service"),
		SectionHeuristic("solution"),
		{Name: "paragraphs", Run: paragraphs},
	}
}

// Extract runs heuristics in order over doc, stopping once MaxInsights
// snippets are collected.
func Extract(doc *html.Node, heuristics []Heuristic) []string {
	var found []string
	for _, h := range heuristics {
		if len(found) >= MaxInsights {
			break
		}
		found = append(found, h.Run(doc, found)...)
	}
	if len(found) > MaxInsights {
		found = found[:MaxInsights]
	}
	return found
}

func metaDescription(doc *html.Node, _ []string) []string {
	n := findFirst(doc, func(n *html.Node) bool {
		return n.DataAtom == atom.Meta && attr(n, "name") == "description"
	})
	if n == nil {
		return nil
	}
	content := strings.TrimSpace(attr(n, "content"))
	if content == "" {
		return nil
	}
	return []string{truncate(content, MaxInsightLen)}
}

// SectionHeuristic matches the first section or div whose id or class
// contains keyword and yields the start of its text.
func SectionHeuristic(keyword string) Heuristic {
	return Heuristic{
		Name: keyword,
		Run: func(doc *html.Node, _ []string) []string {
			n := findFirst(doc, func(n *html.Node) bool {
				if n.DataAtom != atom.Section && n.DataAtom != atom.Div {
					return false
				}
				key := strings.ToLower(attr(n, "id") + " " + attr(n, "class"))
				return strings.Contains(key, keyword)
			})
			if n == nil {
				return nil
			}
			text := nodeText(n)
			if text == "" {
				return nil
			}
			return []string{truncate(text, MaxInsightLen)}
		},
	}
}

// paragraphs only runs when fewer than two insights were found, and fills up
// to MaxInsights with paragraphs longer than MinParagraphLen.
func paragraphs(doc *html.Node, found []string) []string {
	if len(found) >= 2 {
		return nil
	}
	var out []string
	walk(doc, func(n *html.Node) bool {
		if len(found)+len(out) >= MaxInsights {
			return false
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.P {
			text := nodeText(n)
			if len([]rune(text)) > MinParagraphLen {
				out = append(out, truncate(text, MaxInsightLen))
			}
		}
		return true
	})
	return out
}

// nodeText joins the trimmed text nodes under n with single spaces, skipping
// script, style, and noscript content.
func nodeText(n *html.Node) string {
	var parts []string
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript:
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.Join(parts, " ")
}

// walk visits n and its descendants in document order until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func findFirst(doc *html.Node, match func(*html.Node) bool) *html.Node {
	var found *html.Node
	walk(doc, func(n *html.Node) bool {
		if n.Type == html.ElementNode && match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
