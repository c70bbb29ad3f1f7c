package action

import (
	"context"
	"strings"

	"watcher/internal/application/port/output"
	"watcher/internal/domain/entity"
)

var _ output.ActionPort = (*DoneAction)(nil)

type DoneAction struct{}

func NewDoneAction() *DoneAction {
	return &DoneAction{}
}

func (a *DoneAction) Name() entity.ActionName { return entity.ActionDone }

func (a *DoneAction) Description() string {
	return "Finishes the task. Pass the complete final answer in the required output format."
}

func (a *DoneAction) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "The final answer.",
			},
		},
		"required": []string{"text"},
	}
}

type doneInput struct {
	Text string `json:"text"`
}

func (a *DoneAction) Execute(ctx context.Context, session output.SessionPort, arguments string) entity.ActionResult {
	var in doneInput
	if err := decodeArgs(arguments, &in); err != nil {
		return entity.Failed(err.Error())
	}
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return entity.Failed("text parameter is required")
	}
	return entity.Done(text)
}
