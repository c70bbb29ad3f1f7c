package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory(t *testing.T) {
	h := &History{}
	h.Add(Step{Action: ActionGoToURL, Result: Succeeded("Navigated to https://example.com")})
	h.Add(Step{Action: ActionGetXPath, Result: Failed("Element not found")})
	h.Add(Step{Action: ActionDone, Result: Done(`{"problematic_content": []}`)})

	assert.Equal(t, 3, h.Steps[2].Number)
	assert.Equal(t, []string{"go_to_url", "get_xpath", "done"}, h.ActionNames())
	assert.Equal(t, []string{"Element not found"}, h.Errors())
	assert.Equal(t, []string{"Navigated to https://example.com", `{"problematic_content": []}`}, h.ExtractedContent())
	assert.True(t, h.IsDone())

	final, ok := h.FinalResult()
	assert.True(t, ok)
	assert.Equal(t, `{"problematic_content": []}`, final)
}

func TestHistory_Nil(t *testing.T) {
	var h *History

	assert.Nil(t, h.ExtractedContent())
	assert.False(t, h.IsDone())
	_, ok := h.FinalResult()
	assert.False(t, ok)
}

func TestActionResult_Observation(t *testing.T) {
	assert.Equal(t, "Error: boom", Failed("boom").Observation())
	assert.Equal(t, "content", Succeeded("content").Observation())
	assert.Equal(t, "ok", Succeeded("").Observation())
	assert.Equal(t, "ok", ActionResult{Success: true, ExtractedContent: "hidden"}.Observation())
}
