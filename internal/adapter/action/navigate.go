package action

import (
	"context"
	"fmt"
	"strings"

	"watcher/internal/application/port/output"
	"watcher/internal/domain/entity"
)

var _ output.ActionPort = (*GoToURLAction)(nil)

type GoToURLAction struct {
	logger output.LoggerPort
}

func NewGoToURLAction(logger output.LoggerPort) *GoToURLAction {
	return &GoToURLAction{logger: logger}
}

func (a *GoToURLAction) Name() entity.ActionName { return entity.ActionGoToURL }

func (a *GoToURLAction) Description() string {
	return "Navigates the browser to the specified URL and waits until the page is loaded."
}

func (a *GoToURLAction) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"url": map[string]interface{}{
				"type":        "string",
				"description": "Full URL to navigate to. Must include protocol (https:// or http://).",
			},
		},
		"required": []string{"url"},
	}
}

type navigateInput struct {
	URL string `json:"url"`
}

func (a *GoToURLAction) Execute(ctx context.Context, session output.SessionPort, arguments string) entity.ActionResult {
	var in navigateInput
	if err := decodeArgs(arguments, &in); err != nil {
		return entity.Failed(err.Error())
	}
	url := strings.TrimSpace(in.URL)
	if url == "" {
		return entity.Failed("url parameter is required")
	}

	a.logger.Info("Navigating", "url", url)

	if err := session.Navigate(ctx, url); err != nil {
		return entity.Failed(fmt.Sprintf("navigation failed: %v", err))
	}
	return entity.Succeeded(fmt.Sprintf("Navigated to %s", session.CurrentURL()))
}
