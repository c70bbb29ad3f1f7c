package prompts

import (
	"fmt"
	"sort"
	"strings"

	"watcher/internal/application/port/output"

	"github.com/tmc/langchaingo/prompts"
)

var moderationTemplate = prompts.NewPromptTemplate(strings.TrimRight(ModerationPromptTemplate, "\n"), []string{"url"})

// ModerationTask builds the task handed to the agent for one URL. The output is a pure
// function of url.
func ModerationTask(url string) string {
	task, err := moderationTemplate.Format(map[string]any{"url": url})
	if err != nil {
		// embedded template; only a broken build gets here
		panic(fmt.Sprintf("moderation prompt template: %v", err))
	}
	return task
}

type ActionInfo struct {
	Name        string
	Description string
}

// GenerateSystemPrompt renders baseTemplate with the registered actions, sorted by name.
func GenerateSystemPrompt(baseTemplate string, registry output.ActionRegistry) (string, error) {
	actions := registry.All()
	infos := make([]ActionInfo, 0, len(actions))
	for _, a := range actions {
		infos = append(infos, ActionInfo{
			Name:        a.Name().String(),
			Description: a.Description(),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})

	tmpl := prompts.NewPromptTemplate(baseTemplate, []string{"actions"})
	out, err := tmpl.Format(map[string]any{"actions": infos})
	if err != nil {
		return "", fmt.Errorf("render system prompt: %w", err)
	}
	return out, nil
}
