package rod

import (
	"context"
	"fmt"
	"time"

	"watcher/internal/application/port/output"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

var _ output.ElementHandle = (*elementHandle)(nil)

type elementHandle struct {
	el      *rod.Element
	page    *rod.Page
	timeout time.Duration
}

func (h *elementHandle) scoped(ctx context.Context) *rod.Element {
	return h.el.Context(ctx).Timeout(h.timeout)
}

func (h *elementHandle) Click(ctx context.Context) error {
	if err := h.scoped(ctx).Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click failed: %w", err)
	}
	_ = h.page.Context(ctx).WaitIdle(idleWait)
	return nil
}

func (h *elementHandle) Hover(ctx context.Context) error {
	if err := h.scoped(ctx).Hover(); err != nil {
		return fmt.Errorf("hover failed: %w", err)
	}
	return nil
}

func (h *elementHandle) Fill(ctx context.Context, value string) error {
	el := h.scoped(ctx)
	if err := el.SelectAllText(); err == nil {
		_ = el.Input("")
	}
	if err := el.Input(value); err != nil {
		return fmt.Errorf("input failed: %w", err)
	}
	return nil
}

func (h *elementHandle) Property(ctx context.Context, name string) (string, error) {
	v, err := h.scoped(ctx).Property(name)
	if err != nil {
		return "", err
	}
	return propertyString(v), nil
}

// propertyString renders a DOM property the way the model expects to read it:
// strings bare, scalars in their JSON form, objects as compact JSON.
func propertyString(v gson.JSON) string {
	switch val := v.Val().(type) {
	case nil:
		return ""
	case string:
		return val
	case bool, float64:
		return v.String()
	default:
		return v.JSON("", "")
	}
}
