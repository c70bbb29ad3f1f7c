package output

import (
	"context"

	"watcher/internal/domain/entity"
)

// ActionPort is a named operation the agent may invoke against the live page.
type ActionPort interface {
	Name() entity.ActionName
	Description() string
	Parameters() map[string]interface{}
	Execute(ctx context.Context, session SessionPort, arguments string) entity.ActionResult
}

type ActionRegistry interface {
	Register(action ActionPort)
	Get(name entity.ActionName) (ActionPort, bool)
	All() []ActionPort
	Definitions() []entity.ToolDefinition
	Dispatch(ctx context.Context, session SessionPort, name entity.ActionName, arguments string) entity.ActionResult
}
