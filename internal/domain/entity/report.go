package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrNoReport = errors.New("no JSON object found in report")

// Violation is one flagged piece of content.
type Violation struct {
	Item   string `json:"item"`
	Reason string `json:"reason"`
}

// Report is the output shape requested from the model.
type Report struct {
	ProblematicContent []Violation `json:"problematic_content"`
}

func (r Report) Clean() bool {
	return len(r.ProblematicContent) == 0
}

// ParseReport extracts the report object from model output that may carry prose or
// markdown fences around it.
func ParseReport(text string) (*Report, error) {
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoReport
	}

	var report Report
	if err := json.Unmarshal([]byte(text[start:end+1]), &report); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}
	if report.ProblematicContent == nil {
		report.ProblematicContent = []Violation{}
	}
	return &report, nil
}
