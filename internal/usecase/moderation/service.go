package moderation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"watcher/internal/application/port/input"
	"watcher/internal/application/port/output"
	"watcher/internal/domain/entity"
	"watcher/internal/infrastructure/prompts"
	"watcher/internal/usecase/analysis"

	"github.com/google/uuid"
)

var _ input.Moderator = (*Service)(nil)

// Service runs one agent per URL in a fresh browser session and reduces the run to a
// single report string.
type Service struct {
	browser output.BrowserPort
	runtime output.AgentRuntime
	actions output.ActionRegistry
	logger  output.LoggerPort
	metrics output.MetricsPort
}

func New(
	browser output.BrowserPort,
	runtime output.AgentRuntime,
	actions output.ActionRegistry,
	logger output.LoggerPort,
	metrics output.MetricsPort,
) *Service {
	return &Service{
		browser: browser,
		runtime: runtime,
		actions: actions,
		logger:  logger,
		metrics: metrics,
	}
}

// Moderate never returns an error value; failures are carried in Outcome.Err.
func (s *Service) Moderate(ctx context.Context, url string) (outcome entity.Outcome) {
	start := time.Now()
	outcome = entity.Outcome{RunID: uuid.NewString(), URL: url}
	log := s.logger.WithFields(map[string]any{"run": outcome.RunID, "url": url})

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("Moderation panicked", "panic", rec)
			outcome.Report = ""
			outcome.Err = &Error{Stage: StageAgent, Err: fmt.Errorf("%v", rec)}
		}
		s.finish(log, outcome, time.Since(start))
	}()

	log.Info("Moderation started")

	session, err := s.browser.NewSession(ctx)
	if err != nil {
		outcome.Err = &Error{Stage: StageSession, Err: err}
		return outcome
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Warn("Session close failed", "error", err)
		}
	}()

	history, err := s.runtime.Run(ctx, output.AgentRequest{
		Task:    prompts.ModerationTask(url),
		Session: session,
		Actions: s.actions,
	})
	if history != nil {
		outcome.Steps = len(history.Steps)
		s.logHistory(log, history)
	}
	if err != nil {
		stage := StageAgent
		if errors.Is(err, output.ErrNoFinalAnswer) {
			stage = StageResult
		}
		outcome.Err = &Error{Stage: stage, Err: err}
		return outcome
	}

	report, ok := history.FinalResult()
	if !ok {
		outcome.Err = &Error{Stage: StageResult, Err: ErrEmptyHistory}
		return outcome
	}
	outcome.Report = report
	return outcome
}

func (s *Service) logHistory(log output.LoggerPort, history *entity.History) {
	actions := analysis.AnalyzeActions(history)
	log.Debug("Agent history",
		"actions", history.ActionNames(),
		"types", analysis.Summary(actions),
		"selectors", analysis.ExtractSelectors(history),
		"errors", history.Errors())
}

func (s *Service) finish(log output.LoggerPort, outcome entity.Outcome, elapsed time.Duration) {
	result, stage := "success", ""
	if outcome.Err != nil {
		result, stage = "error", string(StageOf(outcome.Err))
		log.Warn("Moderation failed", "stage", stage, "error", outcome.Err, "elapsed", elapsed)
	} else {
		log.Info("Moderation finished", "steps", outcome.Steps, "elapsed", elapsed)
	}

	if s.metrics != nil {
		s.metrics.ObserveRun(result, stage, elapsed)
	}
}
