package service

import (
	"context"
	"fmt"

	"watcher/internal/application/port/output"
	"watcher/internal/domain/entity"
)

var _ output.ActionRegistry = (*ActionRegistryImpl)(nil)

// ActionRegistryImpl is built once at startup and shared by every run. It is read-only
// after registration.
type ActionRegistryImpl struct {
	actions map[entity.ActionName]output.ActionPort
	order   []entity.ActionName
	logger  output.LoggerPort
	metrics output.MetricsPort
}

func NewActionRegistry(logger output.LoggerPort, metrics output.MetricsPort) *ActionRegistryImpl {
	return &ActionRegistryImpl{
		actions: make(map[entity.ActionName]output.ActionPort),
		logger:  logger,
		metrics: metrics,
	}
}

func (r *ActionRegistryImpl) Register(action output.ActionPort) {
	if _, exists := r.actions[action.Name()]; !exists {
		r.order = append(r.order, action.Name())
	}
	r.actions[action.Name()] = action
}

func (r *ActionRegistryImpl) Get(name entity.ActionName) (output.ActionPort, bool) {
	action, ok := r.actions[name]
	return action, ok
}

func (r *ActionRegistryImpl) All() []output.ActionPort {
	result := make([]output.ActionPort, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.actions[name])
	}
	return result
}

func (r *ActionRegistryImpl) Definitions() []entity.ToolDefinition {
	result := make([]entity.ToolDefinition, 0, len(r.order))
	for _, action := range r.All() {
		result = append(result, entity.ToolDefinition{
			Name:        action.Name().String(),
			Description: action.Description(),
			Parameters:  action.Parameters(),
		})
	}
	return result
}

// Dispatch runs the named action. Unknown names and panics come back as failure results.
func (r *ActionRegistryImpl) Dispatch(ctx context.Context, session output.SessionPort, name entity.ActionName, arguments string) (result entity.ActionResult) {
	action, ok := r.actions[name]
	if !ok {
		r.logger.Warn("Unknown action called", "name", name)
		return entity.Failed(fmt.Sprintf("Unknown action '%s'", name))
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Action panicked", "name", name, "panic", rec)
			result = entity.Failed(fmt.Sprintf("Error performing action: %v", rec))
		}
		if r.metrics != nil {
			r.metrics.ObserveAction(name.String(), result.Success)
		}
	}()

	r.logger.Debug("Executing action", "name", name, "args", arguments)
	result = action.Execute(ctx, session, arguments)
	if !result.Success {
		r.logger.Info("Action failed", "name", name, "error", result.Error)
	}
	return result
}
