package entity

import (
	"fmt"
	"sort"
	"strings"
)

// ElementNode describes one indexed element of the live page.
type ElementNode struct {
	Index      int               `json:"index"`
	Tag        string            `json:"tag"`
	Text       string            `json:"text,omitempty"`
	Selector   string            `json:"selector"`
	XPath      *string           `json:"xpath,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// SelectorMap is keyed by the index the model refers to.
type SelectorMap map[int]ElementNode

func (m SelectorMap) Lookup(index int) (ElementNode, bool) {
	node, ok := m[index]
	return node, ok
}

func (m SelectorMap) Indices() []int {
	indices := make([]int, 0, len(m))
	for idx := range m {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices
}

type PageState struct {
	URL      string
	Title    string
	Elements SelectorMap
}

// Describe renders the state the way the model reads it: one "[index]<tag> text" line per element.
func (s PageState) Describe(maxTextLen int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Current URL: %s\nTitle: %s\nInteractive elements:\n", s.URL, s.Title)
	if len(s.Elements) == 0 {
		sb.WriteString("(none)\n")
		return sb.String()
	}
	for _, idx := range s.Elements.Indices() {
		node := s.Elements[idx]
		text := node.Text
		if maxTextLen > 0 && len(text) > maxTextLen {
			text = text[:maxTextLen] + "..."
		}
		fmt.Fprintf(&sb, "[%d]<%s>", idx, node.Tag)
		for _, key := range []string{"type", "name", "href", "placeholder", "aria-label"} {
			if v, ok := node.Attributes[key]; ok && v != "" {
				fmt.Fprintf(&sb, " %s=%q", key, v)
			}
		}
		if text != "" {
			sb.WriteString(" ")
			sb.WriteString(text)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

type Screenshot struct {
	Data   []byte
	Format string
	Width  int
	Height int
}
