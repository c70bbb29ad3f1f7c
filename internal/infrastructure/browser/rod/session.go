package rod

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"sync"
	"time"

	"watcher/internal/application/port/output"
	"watcher/internal/domain/entity"

	"github.com/disintegration/imaging"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

var _ output.SessionPort = (*Session)(nil)

const (
	maxScreenshotWidth = 1024
	maxIndexedElements = 300
)

type Session struct {
	id        string
	incognito *rod.Browser
	page      *rod.Page
	timeout   time.Duration
	clean     CleanConfig
	logger    output.LoggerPort

	mu        sync.RWMutex
	selectors entity.SelectorMap
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) scoped(ctx context.Context) *rod.Page {
	return s.page.Context(ctx).Timeout(s.timeout)
}

func (s *Session) Navigate(ctx context.Context, url string) error {
	page := s.scoped(ctx)
	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("page load failed: %w", err)
	}
	_ = s.page.Context(ctx).WaitIdle(idleWait)

	s.setSelectors(nil)
	s.logger.Debug("Navigated", "url", url)
	return nil
}

func (s *Session) CurrentURL() string {
	info, err := s.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

func (s *Session) RefreshState(ctx context.Context) (*entity.PageState, error) {
	page := s.scoped(ctx)

	info, err := page.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to read page info: %w", err)
	}

	res, err := page.Eval(indexElementsJS, maxIndexedElements)
	if err != nil {
		return nil, fmt.Errorf("failed to index elements: %w", err)
	}
	selectors, err := parseIndexedElements(res.Value)
	if err != nil {
		return nil, err
	}
	s.setSelectors(selectors)

	return &entity.PageState{
		URL:      info.URL,
		Title:    info.Title,
		Elements: selectors,
	}, nil
}

func (s *Session) SelectorMap() entity.SelectorMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectors
}

func (s *Session) setSelectors(m entity.SelectorMap) {
	if m == nil {
		m = entity.SelectorMap{}
	}
	s.mu.Lock()
	s.selectors = m
	s.mu.Unlock()
}

// Element resolves a node against the live DOM, by its index attribute first and by
// xpath when the page re-rendered the element.
func (s *Session) Element(ctx context.Context, node entity.ElementNode) (output.ElementHandle, error) {
	page := s.page.Context(ctx)

	els, err := page.Elements(node.Selector)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", node.Selector, err)
	}
	if len(els) == 0 && node.XPath != nil && *node.XPath != "" {
		els, err = page.ElementsX(*node.XPath)
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", *node.XPath, err)
		}
	}
	if len(els) == 0 {
		return nil, output.ErrElementNotFound
	}

	return &elementHandle{el: els[0], page: s.page, timeout: s.timeout}, nil
}

func (s *Session) PageText(ctx context.Context) (string, error) {
	res, err := s.scoped(ctx).Eval(`() => document.body ? document.body.innerText : ""`)
	if err != nil {
		return "", fmt.Errorf("failed to read page text: %w", err)
	}
	return strings.TrimSpace(res.Value.Str()), nil
}

func (s *Session) PageHTML(ctx context.Context) (string, error) {
	raw, err := s.scoped(ctx).HTML()
	if err != nil {
		return "", fmt.Errorf("failed to get HTML: %w", err)
	}
	return CleanHTML(raw, &s.clean), nil
}

func (s *Session) Scroll(ctx context.Context, direction string) error {
	var js string
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "down":
		js = `() => window.scrollBy(0, window.innerHeight)`
	case "up":
		js = `() => window.scrollBy(0, -window.innerHeight)`
	case "top":
		js = `() => window.scrollTo(0, 0)`
	case "bottom":
		js = `() => window.scrollTo(0, document.body.scrollHeight)`
	default:
		return fmt.Errorf("unknown scroll direction: %s", direction)
	}

	if _, err := s.scoped(ctx).Eval(js); err != nil {
		return fmt.Errorf("scroll failed: %w", err)
	}
	_ = s.page.Context(ctx).WaitIdle(idleWait / 2)
	return nil
}

func (s *Session) Screenshot(ctx context.Context) (*entity.Screenshot, error) {
	raw, err := s.scoped(ctx).Screenshot(false, &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: gson.Int(80),
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}
	if img.Bounds().Dx() > maxScreenshotWidth {
		img = imaging.Resize(img, maxScreenshotWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(75)); err != nil {
		return nil, fmt.Errorf("jpeg encode failed: %w", err)
	}

	return &entity.Screenshot{
		Data:   buf.Bytes(),
		Format: "jpeg",
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}, nil
}

func (s *Session) Close() error {
	var errs []string
	if err := s.page.Close(); err != nil {
		errs = append(errs, err.Error())
	}
	if err := s.incognito.Context(context.Background()).Close(); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("close session %s: %s", s.id, strings.Join(errs, "; "))
	}
	s.logger.Debug("Session closed")
	return nil
}
