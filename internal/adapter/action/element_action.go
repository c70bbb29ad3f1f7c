package action

import (
	"context"
	"errors"
	"fmt"

	"watcher/internal/application/port/output"
	"watcher/internal/domain/entity"
)

var _ output.ActionPort = (*PerformElementAction)(nil)

type PerformElementAction struct {
	logger output.LoggerPort
}

func NewPerformElementAction(logger output.LoggerPort) *PerformElementAction {
	return &PerformElementAction{logger: logger}
}

func (a *PerformElementAction) Name() entity.ActionName { return entity.ActionPerformAction }

func (a *PerformElementAction) Description() string {
	return "Perform element action"
}

func (a *PerformElementAction) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"index": indexProperty(),
			"action": map[string]interface{}{
				"type": "string",
				"enum": []string{
					string(entity.ElementClick),
					string(entity.ElementHover),
					string(entity.ElementFill),
				},
				"description": "Interaction to perform, defaults to click.",
			},
			"value": map[string]interface{}{
				"type":        "string",
				"description": "Text to type. Required for fill.",
			},
		},
		"required": []string{"index"},
	}
}

type elementActionInput struct {
	Index  int     `json:"index"`
	Action string  `json:"action"`
	Value  *string `json:"value,omitempty"`
}

func (a *PerformElementAction) Execute(ctx context.Context, session output.SessionPort, arguments string) entity.ActionResult {
	var in elementActionInput
	if err := decodeArgs(arguments, &in); err != nil {
		return entity.Failed(err.Error())
	}
	req, err := entity.NewElementActionRequest(in.Index, in.Action, in.Value)
	if err != nil {
		var unsupported *entity.UnsupportedActionError
		if errors.As(err, &unsupported) {
			return entity.Failed(unsupported.Message())
		}
		return entity.Failed(err.Error())
	}

	el, failure, ok := resolveElement(ctx, session, req.Index)
	if !ok {
		return failure
	}

	a.logger.Debug("Performing element action", "index", req.Index, "kind", req.Kind)

	switch req.Kind {
	case entity.ElementClick:
		if err := el.Click(ctx); err != nil {
			return performFailed(err)
		}
		return entity.Succeeded(fmt.Sprintf("Clicked element %d", req.Index))
	case entity.ElementHover:
		if err := el.Hover(ctx); err != nil {
			return performFailed(err)
		}
		return entity.Succeeded(fmt.Sprintf("Hovered over element %d", req.Index))
	case entity.ElementFill:
		if err := el.Fill(ctx, req.Value); err != nil {
			return performFailed(err)
		}
		return entity.Succeeded(fmt.Sprintf("Filled element %d with '%s'", req.Index, req.Value))
	}

	return entity.Failed("Unsupported action: " + string(req.Kind))
}

func performFailed(err error) entity.ActionResult {
	return entity.Failed(fmt.Sprintf("Error performing action: %v", err))
}
