package entity

import (
	"errors"
	"fmt"
	"strings"
)

const DefaultPropertyName = "innerText"

var (
	ErrMissingField  = errors.New("missing required field")
	ErrNegativeIndex = errors.New("element index must not be negative")
)

// UnsupportedActionError rejects element action kinds the handlers cannot perform.
type UnsupportedActionError struct {
	Kind   string
	Reason string
}

func (e *UnsupportedActionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported action: %s (%s)", e.Kind, e.Reason)
	}
	return "unsupported action: " + e.Kind
}

// Message is the text reported back to the model.
func (e *UnsupportedActionError) Message() string {
	if e.Reason != "" {
		return fmt.Sprintf("Unsupported action: %s (%s)", e.Kind, e.Reason)
	}
	return "Unsupported action: " + e.Kind
}

// JobRecord is the payload of the save_job action.
type JobRecord struct {
	Title   string
	Company string
	Link    string
	Salary  *string
}

func NewJobRecord(title, company, link string, salary *string) (JobRecord, error) {
	title = strings.TrimSpace(title)
	company = strings.TrimSpace(company)
	link = strings.TrimSpace(link)

	switch {
	case title == "":
		return JobRecord{}, fmt.Errorf("%w: title", ErrMissingField)
	case company == "":
		return JobRecord{}, fmt.Errorf("%w: company", ErrMissingField)
	case link == "":
		return JobRecord{}, fmt.Errorf("%w: job_link", ErrMissingField)
	}

	return JobRecord{
		Title:   title,
		Company: company,
		Link:    link,
		Salary:  salary,
	}, nil
}

// ElementReference names an element of the session's selector map.
type ElementReference struct {
	Index int
	XPath *string
}

func NewElementReference(index int, xpath *string) (ElementReference, error) {
	if index < 0 {
		return ElementReference{}, ErrNegativeIndex
	}
	return ElementReference{Index: index, XPath: xpath}, nil
}

type ElementPropertyQuery struct {
	Index        int
	PropertyName string
}

func NewElementPropertyQuery(index int, propertyName string) (ElementPropertyQuery, error) {
	if index < 0 {
		return ElementPropertyQuery{}, ErrNegativeIndex
	}
	propertyName = strings.TrimSpace(propertyName)
	if propertyName == "" {
		propertyName = DefaultPropertyName
	}
	return ElementPropertyQuery{Index: index, PropertyName: propertyName}, nil
}

type ElementActionKind string

const (
	ElementClick ElementActionKind = "click"
	ElementHover ElementActionKind = "hover"
	ElementFill  ElementActionKind = "fill"
)

type ElementActionRequest struct {
	Index int
	Kind  ElementActionKind
	Value string
}

// NewElementActionRequest defaults an empty kind to click. Fill needs a non-empty value;
// a fill without one is reported the same way as an unknown kind.
func NewElementActionRequest(index int, kind string, value *string) (ElementActionRequest, error) {
	if index < 0 {
		return ElementActionRequest{}, ErrNegativeIndex
	}

	k := ElementActionKind(strings.ToLower(strings.TrimSpace(kind)))
	if k == "" {
		k = ElementClick
	}

	req := ElementActionRequest{Index: index, Kind: k}
	switch k {
	case ElementClick, ElementHover:
	case ElementFill:
		if value == nil || *value == "" {
			return ElementActionRequest{}, &UnsupportedActionError{Kind: string(k), Reason: "value required"}
		}
		req.Value = *value
	default:
		return ElementActionRequest{}, &UnsupportedActionError{Kind: kind}
	}
	return req, nil
}
