package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"watcher/internal/application/port/output"
	"watcher/internal/domain/entity"
	"watcher/internal/infrastructure/prompts"
)

var _ output.AgentRuntime = (*Runtime)(nil)

const (
	DefaultMaxSteps   = 25
	maxObservationLen = 20000
)

var ErrMaxIterations = errors.New("max iterations exceeded")

// Runtime is the tool-calling loop: the model picks actions from the registry, the
// registry runs them against the session, the observations go back to the model.
type Runtime struct {
	llm            output.LLMPort
	logger         output.LoggerPort
	systemTemplate string
	maxSteps       int
	temperature    float32
	observer       output.StepObserver
}

type Option func(*Runtime)

func WithMaxSteps(n int) Option {
	return func(r *Runtime) {
		if n > 0 {
			r.maxSteps = n
		}
	}
}

func WithObserver(o output.StepObserver) Option {
	return func(r *Runtime) {
		if o != nil {
			r.observer = o
		}
	}
}

func WithTemperature(t float32) Option {
	return func(r *Runtime) {
		r.temperature = t
	}
}

func New(llm output.LLMPort, logger output.LoggerPort, systemTemplate string, opts ...Option) *Runtime {
	r := &Runtime{
		llm:            llm,
		logger:         logger,
		systemTemplate: systemTemplate,
		maxSteps:       DefaultMaxSteps,
		observer:       nopObserver{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run returns the history recorded so far together with any error.
func (r *Runtime) Run(ctx context.Context, req output.AgentRequest) (*entity.History, error) {
	history := &entity.History{}

	systemPrompt, err := prompts.GenerateSystemPrompt(r.systemTemplate, req.Actions)
	if err != nil {
		return history, fmt.Errorf("failed to generate system prompt: %w", err)
	}

	messages := []entity.Message{
		{Role: entity.RoleSystem, Content: systemPrompt},
		{Role: entity.RoleUser, Content: req.Task},
	}
	toolDefs := req.Actions.Definitions()

	for iteration := 1; iteration <= r.maxSteps; iteration++ {
		if err := ctx.Err(); err != nil {
			return history, err
		}

		r.observer.OnIteration(ctx, iteration, r.maxSteps)
		r.logger.Debug("Starting iteration", "iteration", iteration)

		resp, err := r.llm.Chat(ctx, output.ChatRequest{
			Messages:    messages,
			Tools:       toolDefs,
			Temperature: r.temperature,
		})
		if err != nil {
			return history, fmt.Errorf("llm request failed: %w", err)
		}

		thought := resp.Message.Content
		if thought != "" {
			r.observer.OnThought(ctx, thought)
		}
		messages = append(messages, resp.Message)

		if len(resp.Message.ToolCalls) == 0 {
			if strings.TrimSpace(thought) == "" {
				r.logger.Warn("Run ended with an empty reply", "iterations", iteration)
				return history, output.ErrNoFinalAnswer
			}
			history.Add(entity.Step{
				Thought: thought,
				Action:  entity.ActionDone,
				Result:  entity.Done(thought),
			})
			r.logger.Info("Run finished without tool call", "iterations", iteration)
			return history, nil
		}

		for _, tc := range resp.Message.ToolCalls {
			name := entity.ActionName(tc.Name)
			r.observer.OnActionStart(ctx, name, tc.Arguments)

			result := req.Actions.Dispatch(ctx, req.Session, name, tc.Arguments)
			history.Add(entity.Step{
				Thought:   thought,
				Action:    name,
				Arguments: tc.Arguments,
				Result:    result,
			})
			r.observer.OnActionResult(ctx, name, result)

			if result.IsDone {
				r.logger.Info("Run finished", "iterations", iteration, "steps", len(history.Steps))
				return history, nil
			}

			messages = append(messages, entity.Message{
				Role:       entity.RoleTool,
				ToolCallID: tc.ID,
				Name:       tc.Name,
				Content:    truncate(result.Observation()),
			})
		}
	}

	return history, fmt.Errorf("%w (%d)", ErrMaxIterations, r.maxSteps)
}

func truncate(s string) string {
	if len(s) > maxObservationLen {
		return s[:maxObservationLen] + "\n... (truncated)"
	}
	return s
}

type nopObserver struct{}

func (nopObserver) OnIteration(context.Context, int, int) {}

func (nopObserver) OnThought(context.Context, string) {}

func (nopObserver) OnActionStart(context.Context, entity.ActionName, string) {}

func (nopObserver) OnActionResult(context.Context, entity.ActionName, entity.ActionResult) {}
