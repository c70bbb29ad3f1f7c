package web

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
)

// renderOutput shows the result as a fenced block so reports keep their layout and any
// markup in them is escaped.
func renderOutput(md goldmark.Markdown, text string) (template.HTML, error) {
	if text == "" {
		return "", nil
	}

	lang := ""
	if strings.HasPrefix(strings.TrimSpace(text), "{") {
		lang = "json"
	}
	fence := fenceFor(text)
	source := fmt.Sprintf("%s%s\n%s\n%s\n", fence, lang, text, fence)

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render output: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// fenceFor returns a backtick fence longer than any backtick run inside text.
func fenceFor(text string) string {
	longest, run := 0, 0
	for _, r := range text {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	if longest < 3 {
		return "```"
	}
	return strings.Repeat("`", longest+1)
}
