package output

import (
	"context"
	"errors"

	"watcher/internal/domain/entity"
)

// ErrNoFinalAnswer is returned by an AgentRuntime when the model stops with an empty reply.
var ErrNoFinalAnswer = errors.New("agent ended without a final answer")

type AgentRequest struct {
	Task    string
	Session SessionPort
	Actions ActionRegistry
}

// AgentRuntime runs the model-driven loop to completion and returns what it did.
type AgentRuntime interface {
	Run(ctx context.Context, req AgentRequest) (*entity.History, error)
}

// StepObserver receives progress while a run is in flight.
type StepObserver interface {
	OnIteration(ctx context.Context, iteration, maxIterations int)
	OnThought(ctx context.Context, content string)
	OnActionStart(ctx context.Context, name entity.ActionName, arguments string)
	OnActionResult(ctx context.Context, name entity.ActionName, result entity.ActionResult)
}
