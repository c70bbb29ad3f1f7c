package prompts

import (
	"context"
	"strings"
	"testing"

	"watcher/internal/application/port/output"
	"watcher/internal/application/service"
	"watcher/internal/domain/entity"
	"watcher/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModerationTask_Deterministic(t *testing.T) {
	first := ModerationTask("https://example.com")
	second := ModerationTask("https://example.com")

	assert.Equal(t, first, second)
}

func TestModerationTask_Contents(t *testing.T) {
	url := "https://example.com/some/page?q=1&r=2"
	task := ModerationTask(url)

	assert.Equal(t, 2, strings.Count(task, url), "URL appears in the instruction and the footer")
	assert.Contains(t, task, `"problematic_content"`)
	assert.Contains(t, task, `"item"`)
	assert.Contains(t, task, `"reason"`)

	for _, category := range []string{
		"hate speech", "violence", "sexually explicit material", "harassment",
		"dangerous content", "illegal activities", "spam", "misrepresentation",
	} {
		assert.Contains(t, task, category)
	}
	assert.True(t, strings.HasSuffix(task, "**URL:** "+url))
}

func TestModerationTask_URLNotEscaped(t *testing.T) {
	task := ModerationTask(`https://example.com/?a=<b>&c="d"`)

	assert.Contains(t, task, `https://example.com/?a=<b>&c="d"`)
}

type stubAction struct {
	name        entity.ActionName
	description string
}

func (s *stubAction) Name() entity.ActionName            { return s.name }
func (s *stubAction) Description() string                { return s.description }
func (s *stubAction) Parameters() map[string]interface{} { return map[string]interface{}{} }
func (s *stubAction) Execute(ctx context.Context, session output.SessionPort, arguments string) entity.ActionResult {
	return entity.Succeeded("")
}

func TestGenerateSystemPrompt(t *testing.T) {
	registry := service.NewActionRegistry(logger.NewNop(), nil)
	registry.Register(&stubAction{name: entity.ActionScroll, description: "Scrolls the page"})
	registry.Register(&stubAction{name: entity.ActionGetXPath, description: "Get XPath of element using index"})

	prompt, err := GenerateSystemPrompt(SystemPromptTemplate, registry)
	require.NoError(t, err)

	assert.Contains(t, prompt, "- get_xpath: Get XPath of element using index")
	assert.Contains(t, prompt, "- scroll: Scrolls the page")
	assert.Less(t, strings.Index(prompt, "get_xpath"), strings.Index(prompt, "- scroll"), "actions sorted by name")
}

func TestGenerateSystemPrompt_InvalidTemplate(t *testing.T) {
	registry := service.NewActionRegistry(logger.NewNop(), nil)

	_, err := GenerateSystemPrompt("Broken {{.actions", registry)
	assert.Error(t, err)
}
