// Package analysis summarises an agent history: which elements the agent located and what
// kind of interaction each step was.
package analysis

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"watcher/internal/domain/entity"
)

type ActionType string

const (
	TypeNavigation   ActionType = "navigation"
	TypeClick        ActionType = "click"
	TypeInput        ActionType = "input"
	TypeVerification ActionType = "verification"
	TypeXPath        ActionType = "xpath"
	TypeCustomSave   ActionType = "custom_save"
	TypeUnknown      ActionType = "unknown"
)

type ActionInfo struct {
	Name  string     `json:"name"`
	Index int        `json:"index"`
	Type  ActionType `json:"type"`
}

var xpathPattern = regexp.MustCompile(`The xpath of the element is (.*)`)

// ExtractSelectors names every xpath the agent resolved element_1, element_2, ... in the
// order they were found.
func ExtractSelectors(h *entity.History) map[string]string {
	selectors := make(map[string]string)
	for _, content := range h.ExtractedContent() {
		m := xpathPattern.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		selectors[fmt.Sprintf("element_%d", len(selectors)+1)] = m[1]
	}
	return selectors
}

// rules are checked in order; the first keyword hit wins.
var rules = []struct {
	typ      ActionType
	keywords []string
}{
	{TypeNavigation, []string{"navigate", "goto", "go to"}},
	{TypeClick, []string{"click"}},
	{TypeInput, []string{"type", "fill", "enter"}},
	{TypeVerification, []string{"check", "verify", "assert"}},
	{TypeXPath, []string{"get xpath"}},
	{TypeCustomSave, []string{"save job"}},
}

func AnalyzeActions(h *entity.History) []ActionInfo {
	if h == nil {
		return []ActionInfo{}
	}

	actions := make([]ActionInfo, 0, len(h.Steps))
	for i, step := range h.Steps {
		actions = append(actions, ActionInfo{
			Name:  step.Action.String(),
			Index: i,
			Type:  classify(step),
		})
	}
	return actions
}

func classify(step entity.Step) ActionType {
	name := strings.ToLower(strings.ReplaceAll(step.Action.String(), "_", " "))
	if step.Action == entity.ActionPerformAction {
		name = elementActionKind(step.Arguments)
	}

	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.typ
			}
		}
	}
	return TypeUnknown
}

// elementActionKind reads the interaction out of perform_element_action arguments; the
// action name alone does not say whether it clicked or typed.
func elementActionKind(arguments string) string {
	var args struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return ""
	}
	kind := strings.ToLower(strings.TrimSpace(args.Action))
	if kind == "" {
		return string(entity.ElementClick)
	}
	return kind
}

// Summary counts the classified steps by type.
func Summary(actions []ActionInfo) map[ActionType]int {
	counts := make(map[ActionType]int)
	for _, a := range actions {
		counts[a.Type]++
	}
	return counts
}
