package action

import (
	"context"

	"watcher/internal/application/port/output"
	"watcher/internal/domain/entity"
)

var _ output.ActionPort = (*GetXPathAction)(nil)

// XPathResultPrefix starts every successful get_xpath result; history analysis matches on it.
const XPathResultPrefix = "The xpath of the element is "

type GetXPathAction struct {
	logger output.LoggerPort
}

func NewGetXPathAction(logger output.LoggerPort) *GetXPathAction {
	return &GetXPathAction{logger: logger}
}

func (a *GetXPathAction) Name() entity.ActionName { return entity.ActionGetXPath }

func (a *GetXPathAction) Description() string {
	return "Get XPath of element using index"
}

func (a *GetXPathAction) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"index": indexProperty(),
			"xpath": map[string]interface{}{"type": "string"},
		},
		"required": []string{"index"},
	}
}

type elementInput struct {
	Index int     `json:"index"`
	XPath *string `json:"xpath,omitempty"`
}

func (a *GetXPathAction) Execute(ctx context.Context, session output.SessionPort, arguments string) entity.ActionResult {
	var in elementInput
	if err := decodeArgs(arguments, &in); err != nil {
		return entity.Failed(err.Error())
	}
	ref, err := entity.NewElementReference(in.Index, in.XPath)
	if err != nil {
		return entity.Failed(err.Error())
	}

	node, ok := session.SelectorMap().Lookup(ref.Index)
	if !ok {
		return entity.Failed("Element not found")
	}
	if node.XPath == nil || *node.XPath == "" {
		return entity.Failed("Element not found, try another index")
	}

	return entity.Succeeded(XPathResultPrefix + *node.XPath)
}
