package entity

type ActionName string

const (
	ActionSaveJob        ActionName = "save_job"
	ActionGetXPath       ActionName = "get_xpath"
	ActionGetProperty    ActionName = "get_element_property"
	ActionPerformAction  ActionName = "perform_element_action"
	ActionGoToURL        ActionName = "go_to_url"
	ActionPageState      ActionName = "page_state"
	ActionExtractContent ActionName = "extract_content"
	ActionScroll         ActionName = "scroll"
	ActionScreenshot     ActionName = "screenshot"
	ActionDone           ActionName = "done"
)

func (n ActionName) String() string {
	return string(n)
}

// ActionResult is what every action handler returns to the agent runtime.
// IncludeInMemory tells the runtime to feed ExtractedContent back to the model.
type ActionResult struct {
	Success          bool   `json:"success"`
	ExtractedContent string `json:"extracted_content,omitempty"`
	Error            string `json:"error,omitempty"`
	IncludeInMemory  bool   `json:"include_in_memory"`
	IsDone           bool   `json:"is_done,omitempty"`
}

func Succeeded(content string) ActionResult {
	return ActionResult{
		Success:          true,
		ExtractedContent: content,
		IncludeInMemory:  true,
	}
}

func Failed(msg string) ActionResult {
	return ActionResult{
		Success: false,
		Error:   msg,
	}
}

func Done(content string) ActionResult {
	return ActionResult{
		Success:          true,
		ExtractedContent: content,
		IncludeInMemory:  true,
		IsDone:           true,
	}
}

// Observation is the text handed back to the model for this result.
func (r ActionResult) Observation() string {
	if !r.Success {
		return "Error: " + r.Error
	}
	if !r.IncludeInMemory || r.ExtractedContent == "" {
		return "ok"
	}
	return r.ExtractedContent
}
