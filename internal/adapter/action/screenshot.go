package action

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"watcher/internal/application/port/output"
	"watcher/internal/domain/entity"
)

var _ output.ActionPort = (*ScreenshotAction)(nil)

// ScreenshotAction stores a capture of the viewport as evidence for the report.
type ScreenshotAction struct {
	dir    string
	logger output.LoggerPort
}

func NewScreenshotAction(dir string, logger output.LoggerPort) *ScreenshotAction {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "watcher-screenshots")
	}
	return &ScreenshotAction{dir: dir, logger: logger}
}

func (a *ScreenshotAction) Name() entity.ActionName { return entity.ActionScreenshot }

func (a *ScreenshotAction) Description() string {
	return "Takes a screenshot of the current viewport and stores it as evidence."
}

func (a *ScreenshotAction) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
		"required":   []string{},
	}
}

func (a *ScreenshotAction) Execute(ctx context.Context, session output.SessionPort, arguments string) entity.ActionResult {
	shot, err := session.Screenshot(ctx)
	if err != nil {
		return entity.Failed(fmt.Sprintf("screenshot failed: %v", err))
	}

	if err := os.MkdirAll(a.dir, 0755); err != nil {
		return entity.Failed(fmt.Sprintf("create screenshot dir: %v", err))
	}
	name := fmt.Sprintf("%s_%s.%s", session.ID(), time.Now().Format("2006-01-02_15-04-05.000"), shot.Format)
	path := filepath.Join(a.dir, name)
	if err := os.WriteFile(path, shot.Data, 0644); err != nil {
		return entity.Failed(fmt.Sprintf("write screenshot: %v", err))
	}

	a.logger.Debug("Screenshot stored", "path", path, "width", shot.Width, "height", shot.Height)

	return entity.Succeeded(fmt.Sprintf("Screenshot of %s saved to %s (%dx%d)", session.CurrentURL(), path, shot.Width, shot.Height))
}
