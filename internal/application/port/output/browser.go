package output

import (
	"context"
	"errors"

	"watcher/internal/domain/entity"
)

// ErrElementNotFound is returned by SessionPort.Element when the selector matches nothing
// on the live page.
var ErrElementNotFound = errors.New("element not found on page")

type BrowserPort interface {
	NewSession(ctx context.Context) (SessionPort, error)
	Close()
}

// SessionPort is one isolated browsing context. Its selector map is refreshed by
// RefreshState and read by the element-resolving actions.
type SessionPort interface {
	ID() string
	Navigate(ctx context.Context, url string) error
	CurrentURL() string

	RefreshState(ctx context.Context) (*entity.PageState, error)
	SelectorMap() entity.SelectorMap
	Element(ctx context.Context, node entity.ElementNode) (ElementHandle, error)

	PageText(ctx context.Context) (string, error)
	PageHTML(ctx context.Context) (string, error)
	Scroll(ctx context.Context, direction string) error
	Screenshot(ctx context.Context) (*entity.Screenshot, error)

	Close() error
}

type ElementHandle interface {
	Click(ctx context.Context) error
	Hover(ctx context.Context) error
	Fill(ctx context.Context, value string) error
	Property(ctx context.Context, name string) (string, error)
}
