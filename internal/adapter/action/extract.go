package action

import (
	"context"
	"fmt"

	"watcher/internal/application/port/output"
	"watcher/internal/domain/entity"
)

var _ output.ActionPort = (*ExtractContentAction)(nil)

type ExtractContentAction struct {
	logger output.LoggerPort
}

func NewExtractContentAction(logger output.LoggerPort) *ExtractContentAction {
	return &ExtractContentAction{logger: logger}
}

func (a *ExtractContentAction) Name() entity.ActionName { return entity.ActionExtractContent }

func (a *ExtractContentAction) Description() string {
	return "Extracts the content of the current page, as visible text or as cleaned HTML."
}

func (a *ExtractContentAction) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"format": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"text", "html"},
				"description": "text (default) or html with scripts, styles and noisy attributes removed.",
			},
		},
		"required": []string{},
	}
}

type extractInput struct {
	Format string `json:"format,omitempty"`
}

func (a *ExtractContentAction) Execute(ctx context.Context, session output.SessionPort, arguments string) entity.ActionResult {
	var in extractInput
	if err := decodeArgs(arguments, &in); err != nil {
		return entity.Failed(err.Error())
	}

	var (
		content string
		err     error
	)
	switch in.Format {
	case "", "text":
		content, err = session.PageText(ctx)
	case "html":
		content, err = session.PageHTML(ctx)
	default:
		return entity.Failed(fmt.Sprintf("unknown format: %s", in.Format))
	}
	if err != nil {
		return entity.Failed(fmt.Sprintf("failed to extract content: %v", err))
	}

	a.logger.Debug("Content extracted", "format", in.Format, "length", len(content))
	return entity.Succeeded(content)
}
