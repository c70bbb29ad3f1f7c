package rod

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

type CleanConfig struct {
	TagsToRemove  []string
	AttrsToRemove []string
	// KeepAttrs survive the data-/on prefix filter.
	KeepAttrs     []string
	MaxOutputSize int
}

// DefaultCleanConfig strips everything that carries no content for a reviewer.
var DefaultCleanConfig = CleanConfig{
	TagsToRemove: []string{
		"script", "style", "noscript", "svg", "iframe",
		"link", "meta", "head", "title", "template",
	},
	AttrsToRemove: []string{
		"style", "srcset", "sizes", "loading", "decoding", "fetchpriority", "tabindex", "nonce",
	},
	KeepAttrs:     []string{"aria-label"},
	MaxOutputSize: 130_000,
}

const truncationNotice = "\n<!-- HTML truncated -->"

// CleanHTML returns the cleaned <body> of rawHTML. Input that does not parse or has no
// body comes back unchanged.
func CleanHTML(rawHTML string, cfg *CleanConfig) string {
	if cfg == nil {
		cfg = &DefaultCleanConfig
	}
	c := newCleaner(cfg)

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return c.truncate(rawHTML)
	}

	body := findElement(doc, "body")
	if body == nil {
		return c.truncate(rawHTML)
	}
	c.stripAttrs(body)
	c.clean(body)

	var sb strings.Builder
	if err := html.Render(&sb, body); err != nil {
		return c.truncate(rawHTML)
	}
	return c.truncate(sb.String())
}

type cleaner struct {
	dropTags  map[string]struct{}
	dropAttrs map[string]struct{}
	keepAttrs map[string]struct{}
	maxSize   int
}

func newCleaner(cfg *CleanConfig) *cleaner {
	return &cleaner{
		dropTags:  toSet(cfg.TagsToRemove),
		dropAttrs: toSet(cfg.AttrsToRemove),
		keepAttrs: toSet(cfg.KeepAttrs),
		maxSize:   cfg.MaxOutputSize,
	}
}

func (c *cleaner) clean(n *html.Node) {
	for child := n.FirstChild; child != nil; {
		next := child.NextSibling
		if c.removable(child) {
			n.RemoveChild(child)
		} else if child.Type == html.ElementNode {
			c.stripAttrs(child)
			c.clean(child)
		}
		child = next
	}
}

func (c *cleaner) stripAttrs(n *html.Node) {
	n.Attr = slices.DeleteFunc(n.Attr, func(a html.Attribute) bool {
		return c.dropAttr(a.Key)
	})
}

func (c *cleaner) removable(n *html.Node) bool {
	switch n.Type {
	case html.CommentNode:
		return true
	case html.ElementNode:
		_, drop := c.dropTags[n.Data]
		return drop
	}
	return false
}

// dropAttr removes styling, event handlers and data-/aria- noise unless explicitly kept.
func (c *cleaner) dropAttr(key string) bool {
	if _, keep := c.keepAttrs[key]; keep {
		return false
	}
	if _, drop := c.dropAttrs[key]; drop {
		return true
	}
	return strings.HasPrefix(key, "data-") || strings.HasPrefix(key, "aria-") || strings.HasPrefix(key, "on")
}

func (c *cleaner) truncate(s string) string {
	if c.maxSize > 0 && len(s) > c.maxSize {
		return s[:c.maxSize] + truncationNotice
	}
	return s
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, tag); found != nil {
			return found
		}
	}
	return nil
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}
