package action

import (
	"watcher/internal/application/port/output"
)

// RegisterDefaults installs the built-in browsing actions and the moderation actions.
func RegisterDefaults(registry output.ActionRegistry, screenshotDir string, logger output.LoggerPort) {
	registry.Register(NewGoToURLAction(logger))
	registry.Register(NewPageStateAction(logger))
	registry.Register(NewExtractContentAction(logger))
	registry.Register(NewScrollAction(logger))
	registry.Register(NewScreenshotAction(screenshotDir, logger))

	registry.Register(NewSaveJobAction(logger))
	registry.Register(NewGetXPathAction(logger))
	registry.Register(NewGetPropertyAction(logger))
	registry.Register(NewPerformElementAction(logger))

	registry.Register(NewDoneAction())
}
