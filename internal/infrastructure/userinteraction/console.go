package userinteraction

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"watcher/internal/application/port/output"
	"watcher/internal/domain/entity"

	"github.com/fatih/color"
)

var _ output.StepObserver = (*ConsoleObserver)(nil)

// ConsoleObserver prints agent progress for the one-shot CLI run.
type ConsoleObserver struct {
	w io.Writer
}

func NewConsoleObserver(w io.Writer) *ConsoleObserver {
	if w == nil {
		w = color.Output
	}
	return &ConsoleObserver{w: w}
}

func (o *ConsoleObserver) OnIteration(ctx context.Context, iteration, maxIterations int) {
	color.New(color.FgCyan, color.Bold).Fprintf(o.w, "\n━━━ Step %d/%d ━━━\n", iteration, maxIterations)
}

func (o *ConsoleObserver) OnThought(ctx context.Context, content string) {
	if content == "" {
		return
	}
	color.New(color.FgBlue).Fprint(o.w, "\n💭 Thinking: ")
	color.New(color.Faint).Fprintln(o.w, truncate(content, 500))
}

func (o *ConsoleObserver) OnActionStart(ctx context.Context, name entity.ActionName, arguments string) {
	icon, label := actionDisplay(name)
	color.New(color.FgYellow, color.Bold).Fprintf(o.w, "\n%s %s\n", icon, label)

	if summary := formatArguments(name, arguments); summary != "" {
		color.New(color.Faint).Fprintf(o.w, "   %s\n", summary)
	}
}

func (o *ConsoleObserver) OnActionResult(ctx context.Context, name entity.ActionName, result entity.ActionResult) {
	if !result.Success {
		color.New(color.FgRed).Fprint(o.w, "❌ Error: ")
		color.New(color.Faint).Fprintln(o.w, truncate(result.Error, 300))
		return
	}
	color.New(color.FgGreen).Fprintf(o.w, "✓ %s\n", formatResult(name, result.ExtractedContent))
}

// PrintOutcome writes the final report, or the error line, after a run.
func PrintOutcome(w io.Writer, outcome entity.Outcome) {
	if w == nil {
		w = color.Output
	}
	if outcome.Failed() {
		color.New(color.FgRed, color.Bold).Fprintln(w, "\n"+outcome.Text())
		return
	}

	color.New(color.FgGreen, color.Bold).Fprintf(w, "\nProblematic Content (%d steps, run %s)\n", outcome.Steps, outcome.RunID)
	report, err := entity.ParseReport(outcome.Report)
	if err != nil {
		fmt.Fprintln(w, outcome.Report)
		return
	}
	if report.Clean() {
		fmt.Fprintln(w, "No problematic content found.")
		return
	}
	for i, v := range report.ProblematicContent {
		color.New(color.FgYellow).Fprintf(w, "%d. %s\n", i+1, v.Item)
		fmt.Fprintf(w, "   %s\n", v.Reason)
	}
}

func actionDisplay(name entity.ActionName) (string, string) {
	displays := map[entity.ActionName][2]string{
		entity.ActionGoToURL:        {"🌐", "Navigate"},
		entity.ActionPageState:      {"👁️", "Page state"},
		entity.ActionExtractContent: {"📄", "Extract content"},
		entity.ActionScroll:         {"📜", "Scroll"},
		entity.ActionScreenshot:     {"📸", "Screenshot"},
		entity.ActionSaveJob:        {"💾", "Save job"},
		entity.ActionGetXPath:       {"🔍", "Get XPath"},
		entity.ActionGetProperty:    {"🔎", "Get property"},
		entity.ActionPerformAction:  {"🖱️", "Element action"},
		entity.ActionDone:           {"🏁", "Done"},
	}
	if d, ok := displays[name]; ok {
		return d[0], d[1]
	}
	return "🔧", name.String()
}

func formatArguments(name entity.ActionName, arguments string) string {
	var args map[string]interface{}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return ""
	}

	switch name {
	case entity.ActionGoToURL:
		if url, ok := args["url"].(string); ok {
			return "URL: " + url
		}
	case entity.ActionSaveJob:
		title, _ := args["title"].(string)
		company, _ := args["company"].(string)
		return fmt.Sprintf("%s @ %s", truncate(title, 40), truncate(company, 30))
	case entity.ActionGetXPath, entity.ActionGetProperty:
		if idx, ok := args["index"].(float64); ok {
			if prop, ok := args["property_name"].(string); ok && prop != "" {
				return fmt.Sprintf("Element [%d] %s", int(idx), prop)
			}
			return fmt.Sprintf("Element [%d]", int(idx))
		}
	case entity.ActionPerformAction:
		idx, _ := args["index"].(float64)
		kind, _ := args["action"].(string)
		if kind == "" {
			kind = "click"
		}
		if value, ok := args["value"].(string); ok {
			return fmt.Sprintf("%s [%d] → %s", kind, int(idx), truncate(value, 30))
		}
		return fmt.Sprintf("%s [%d]", kind, int(idx))
	case entity.ActionScroll:
		if direction, ok := args["direction"].(string); ok {
			return direction
		}
	case entity.ActionExtractContent:
		if format, ok := args["format"].(string); ok {
			return "Format: " + format
		}
	}
	return ""
}

func formatResult(name entity.ActionName, content string) string {
	switch name {
	case entity.ActionPageState:
		return fmt.Sprintf("%d elements indexed", strings.Count(content, "\n["))
	case entity.ActionExtractContent:
		return fmt.Sprintf("%d characters extracted", len(content))
	case entity.ActionDone:
		return "Final answer received"
	}
	return truncate(content, 100)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
