package action

import (
	"context"
	"fmt"

	"watcher/internal/application/port/output"
	"watcher/internal/domain/entity"
)

var _ output.ActionPort = (*PageStateAction)(nil)

const maxElementText = 80

// PageStateAction refreshes the session's selector map and lists the indexed elements.
// The element-resolving actions only see indices produced here.
type PageStateAction struct {
	logger output.LoggerPort
}

func NewPageStateAction(logger output.LoggerPort) *PageStateAction {
	return &PageStateAction{logger: logger}
}

func (a *PageStateAction) Name() entity.ActionName { return entity.ActionPageState }

func (a *PageStateAction) Description() string {
	return "Lists the interactive elements of the current page with their index. Call again after the page changes."
}

func (a *PageStateAction) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
		"required":   []string{},
	}
}

func (a *PageStateAction) Execute(ctx context.Context, session output.SessionPort, arguments string) entity.ActionResult {
	state, err := session.RefreshState(ctx)
	if err != nil {
		return entity.Failed(fmt.Sprintf("failed to read page state: %v", err))
	}

	a.logger.Debug("Page state refreshed", "url", state.URL, "elements", len(state.Elements))

	return entity.Succeeded(state.Describe(maxElementText))
}
