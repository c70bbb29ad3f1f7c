package action

import (
	"context"
	"errors"
	"fmt"

	"watcher/internal/application/port/output"
	"watcher/internal/domain/entity"
)

var _ output.ActionPort = (*GetPropertyAction)(nil)

type GetPropertyAction struct {
	logger output.LoggerPort
}

func NewGetPropertyAction(logger output.LoggerPort) *GetPropertyAction {
	return &GetPropertyAction{logger: logger}
}

func (a *GetPropertyAction) Name() entity.ActionName { return entity.ActionGetProperty }

func (a *GetPropertyAction) Description() string {
	return "Get element property"
}

func (a *GetPropertyAction) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"index": indexProperty(),
			"property_name": map[string]interface{}{
				"type":        "string",
				"description": "DOM property to read, defaults to innerText.",
			},
		},
		"required": []string{"index"},
	}
}

type propertyInput struct {
	Index        int    `json:"index"`
	PropertyName string `json:"property_name"`
}

func (a *GetPropertyAction) Execute(ctx context.Context, session output.SessionPort, arguments string) entity.ActionResult {
	var in propertyInput
	if err := decodeArgs(arguments, &in); err != nil {
		return entity.Failed(err.Error())
	}
	query, err := entity.NewElementPropertyQuery(in.Index, in.PropertyName)
	if err != nil {
		return entity.Failed(err.Error())
	}

	el, failure, ok := resolveElement(ctx, session, query.Index)
	if !ok {
		return failure
	}

	value, err := el.Property(ctx, query.PropertyName)
	if err != nil {
		a.logger.Warn("Property read failed", "index", query.Index, "property", query.PropertyName, "error", err)
		return entity.Failed(fmt.Sprintf("Error getting property: %v", err))
	}

	return entity.Succeeded(fmt.Sprintf("Element %d %s: %s", query.Index, query.PropertyName, value))
}

// resolveElement looks the index up in the session's selector map and then on the live page.
func resolveElement(ctx context.Context, session output.SessionPort, index int) (output.ElementHandle, entity.ActionResult, bool) {
	node, ok := session.SelectorMap().Lookup(index)
	if !ok {
		return nil, entity.Failed("Element not found"), false
	}

	el, err := session.Element(ctx, node)
	if err != nil {
		if errors.Is(err, output.ErrElementNotFound) {
			return nil, entity.Failed("Element not found on page"), false
		}
		return nil, entity.Failed(fmt.Sprintf("Error locating element: %v", err)), false
	}
	if el == nil {
		return nil, entity.Failed("Element not found on page"), false
	}
	return el, entity.ActionResult{}, true
}
