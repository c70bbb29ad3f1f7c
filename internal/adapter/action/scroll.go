package action

import (
	"context"
	"fmt"
	"strings"

	"watcher/internal/application/port/output"
	"watcher/internal/domain/entity"
)

var _ output.ActionPort = (*ScrollAction)(nil)

type ScrollAction struct {
	logger output.LoggerPort
}

func NewScrollAction(logger output.LoggerPort) *ScrollAction {
	return &ScrollAction{logger: logger}
}

func (a *ScrollAction) Name() entity.ActionName { return entity.ActionScroll }

func (a *ScrollAction) Description() string {
	return "Scrolls the page in the given direction."
}

func (a *ScrollAction) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"direction": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"up", "down", "top", "bottom"},
				"description": "Scroll direction",
			},
		},
		"required": []string{"direction"},
	}
}

type scrollInput struct {
	Direction string `json:"direction"`
}

func (a *ScrollAction) Execute(ctx context.Context, session output.SessionPort, arguments string) entity.ActionResult {
	var in scrollInput
	if err := decodeArgs(arguments, &in); err != nil {
		return entity.Failed(err.Error())
	}
	direction := strings.ToLower(strings.TrimSpace(in.Direction))

	if err := session.Scroll(ctx, direction); err != nil {
		return entity.Failed(fmt.Sprintf("scroll failed: %v", err))
	}
	return entity.Succeeded(fmt.Sprintf("Scrolled %s", direction))
}
