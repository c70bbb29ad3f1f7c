package entity

// Step is one action the agent took during a run.
type Step struct {
	Number    int
	Thought   string
	Action    ActionName
	Arguments string
	Result    ActionResult
}

// History is the record of an agent run, in execution order.
type History struct {
	Steps []Step
}

func (h *History) Add(step Step) {
	step.Number = len(h.Steps) + 1
	h.Steps = append(h.Steps, step)
}

// ExtractedContent returns the non-empty extracted texts of successful steps.
func (h *History) ExtractedContent() []string {
	if h == nil {
		return nil
	}
	result := make([]string, 0, len(h.Steps))
	for _, s := range h.Steps {
		if s.Result.ExtractedContent != "" {
			result = append(result, s.Result.ExtractedContent)
		}
	}
	return result
}

func (h *History) ActionNames() []string {
	if h == nil {
		return nil
	}
	result := make([]string, 0, len(h.Steps))
	for _, s := range h.Steps {
		result = append(result, s.Action.String())
	}
	return result
}

func (h *History) Errors() []string {
	if h == nil {
		return nil
	}
	var result []string
	for _, s := range h.Steps {
		if !s.Result.Success {
			result = append(result, s.Result.Error)
		}
	}
	return result
}

// FinalResult is the last extracted content of the run.
func (h *History) FinalResult() (string, bool) {
	content := h.ExtractedContent()
	if len(content) == 0 {
		return "", false
	}
	return content[len(content)-1], true
}

func (h *History) IsDone() bool {
	if h == nil || len(h.Steps) == 0 {
		return false
	}
	return h.Steps[len(h.Steps)-1].Result.IsDone
}
