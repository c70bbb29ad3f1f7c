package service

import (
	"context"
	"testing"
	"time"

	"watcher/internal/application/port/output"
	"watcher/internal/domain/entity"
	"watcher/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcAction struct {
	name entity.ActionName
	fn   func(arguments string) entity.ActionResult
}

func (a *funcAction) Name() entity.ActionName { return a.name }

func (a *funcAction) Description() string { return "test action " + a.name.String() }

func (a *funcAction) Parameters() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}

func (a *funcAction) Execute(ctx context.Context, session output.SessionPort, arguments string) entity.ActionResult {
	return a.fn(arguments)
}

type actionCount struct {
	name    string
	success bool
}

type countingMetrics struct {
	actions []actionCount
}

func (m *countingMetrics) ObserveRun(outcome, stage string, duration time.Duration) {}

func (m *countingMetrics) ObserveAction(name string, success bool) {
	m.actions = append(m.actions, actionCount{name, success})
}

func TestActionRegistry_Order(t *testing.T) {
	r := NewActionRegistry(logger.NewNop(), nil)
	echo := func(args string) entity.ActionResult { return entity.Succeeded(args) }

	r.Register(&funcAction{name: "zeta", fn: echo})
	r.Register(&funcAction{name: "alpha", fn: echo})
	r.Register(&funcAction{name: "zeta", fn: echo})

	defs := r.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "zeta", defs[0].Name)
	assert.Equal(t, "alpha", defs[1].Name)
	assert.Equal(t, "test action alpha", defs[1].Description)

	_, ok := r.Get("alpha")
	assert.True(t, ok)
	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestActionRegistry_Dispatch(t *testing.T) {
	ctx := context.Background()
	metrics := &countingMetrics{}
	r := NewActionRegistry(logger.NewNop(), metrics)

	r.Register(&funcAction{name: "echo", fn: func(args string) entity.ActionResult {
		return entity.Succeeded("got " + args)
	}})
	r.Register(&funcAction{name: "explode", fn: func(string) entity.ActionResult {
		panic("kaboom")
	}})

	result := r.Dispatch(ctx, nil, "echo", `{"a":1}`)
	assert.True(t, result.Success)
	assert.Equal(t, `got {"a":1}`, result.ExtractedContent)

	result = r.Dispatch(ctx, nil, "explode", "")
	assert.False(t, result.Success)
	assert.Equal(t, "Error performing action: kaboom", result.Error)

	result = r.Dispatch(ctx, nil, "fly", "")
	assert.False(t, result.Success)
	assert.Equal(t, "Unknown action 'fly'", result.Error)

	assert.Equal(t, []actionCount{{"echo", true}, {"explode", false}}, metrics.actions)
}
