package action

import (
	"context"
	"errors"

	"watcher/internal/application/port/output"
	"watcher/internal/domain/entity"
)

type fakeElement struct {
	clicked    bool
	hovered    bool
	filled     string
	properties map[string]string
	err        error
}

func (e *fakeElement) Click(ctx context.Context) error {
	if e.err != nil {
		return e.err
	}
	e.clicked = true
	return nil
}

func (e *fakeElement) Hover(ctx context.Context) error {
	if e.err != nil {
		return e.err
	}
	e.hovered = true
	return nil
}

func (e *fakeElement) Fill(ctx context.Context, value string) error {
	if e.err != nil {
		return e.err
	}
	e.filled = value
	return nil
}

func (e *fakeElement) Property(ctx context.Context, name string) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	v, ok := e.properties[name]
	if !ok {
		return "", errors.New("no such property")
	}
	return v, nil
}

// fakeSession serves a fixed selector map. Elements missing from live are treated as
// detached from the page.
type fakeSession struct {
	url         string
	navigated   []string
	navigateErr error
	selectors   entity.SelectorMap
	live        map[int]*fakeElement
	lookupErr   error
	text        string
	html        string
	scrolled    []string
	shot        *entity.Screenshot
	closed      bool
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		url:       "about:blank",
		selectors: entity.SelectorMap{},
		live:      map[int]*fakeElement{},
	}
}

func (s *fakeSession) withElement(index int, xpath string, el *fakeElement) *fakeSession {
	node := entity.ElementNode{Index: index, Tag: "button", Selector: "#el"}
	if xpath != "" {
		node.XPath = &xpath
	}
	s.selectors[index] = node
	if el != nil {
		s.live[index] = el
	}
	return s
}

func (s *fakeSession) ID() string { return "session-1" }

func (s *fakeSession) Navigate(ctx context.Context, url string) error {
	if s.navigateErr != nil {
		return s.navigateErr
	}
	s.navigated = append(s.navigated, url)
	s.url = url
	return nil
}

func (s *fakeSession) CurrentURL() string { return s.url }

func (s *fakeSession) RefreshState(ctx context.Context) (*entity.PageState, error) {
	return &entity.PageState{URL: s.url, Title: "Fake", Elements: s.selectors}, nil
}

func (s *fakeSession) SelectorMap() entity.SelectorMap { return s.selectors }

func (s *fakeSession) Element(ctx context.Context, node entity.ElementNode) (output.ElementHandle, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	el, ok := s.live[node.Index]
	if !ok {
		return nil, output.ErrElementNotFound
	}
	return el, nil
}

func (s *fakeSession) PageText(ctx context.Context) (string, error) { return s.text, nil }

func (s *fakeSession) PageHTML(ctx context.Context) (string, error) { return s.html, nil }

func (s *fakeSession) Scroll(ctx context.Context, direction string) error {
	s.scrolled = append(s.scrolled, direction)
	return nil
}

func (s *fakeSession) Screenshot(ctx context.Context) (*entity.Screenshot, error) {
	if s.shot == nil {
		return nil, errors.New("no page")
	}
	return s.shot, nil
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}
