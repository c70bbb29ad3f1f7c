package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJobRecord(t *testing.T) {
	salary := "90k"
	job, err := NewJobRecord(" Go Dev ", "Acme", "https://jobs.example/1", &salary)
	require.NoError(t, err)
	assert.Equal(t, "Go Dev", job.Title)
	assert.Equal(t, &salary, job.Salary)

	_, err = NewJobRecord("Go Dev", "Acme", "  ", nil)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.EqualError(t, err, "missing required field: job_link")
}

func TestNewElementPropertyQuery(t *testing.T) {
	q, err := NewElementPropertyQuery(4, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultPropertyName, q.PropertyName)

	q, err = NewElementPropertyQuery(4, "value")
	require.NoError(t, err)
	assert.Equal(t, "value", q.PropertyName)

	_, err = NewElementPropertyQuery(-2, "")
	assert.ErrorIs(t, err, ErrNegativeIndex)
}

func TestNewElementActionRequest(t *testing.T) {
	value := "hi"
	empty := ""

	tests := []struct {
		name    string
		kind    string
		value   *string
		want    ElementActionKind
		message string
	}{
		{name: "default click", kind: "", want: ElementClick},
		{name: "case insensitive", kind: " Hover ", want: ElementHover},
		{name: "fill", kind: "fill", value: &value, want: ElementFill},
		{name: "fill nil value", kind: "fill", message: "Unsupported action: fill (value required)"},
		{name: "fill empty value", kind: "fill", value: &empty, message: "Unsupported action: fill (value required)"},
		{name: "unknown", kind: "drag", message: "Unsupported action: drag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewElementActionRequest(1, tt.kind, tt.value)
			if tt.message != "" {
				var unsupported *UnsupportedActionError
				require.True(t, errors.As(err, &unsupported))
				assert.Equal(t, tt.message, unsupported.Message())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Kind)
		})
	}
}

func TestUnsupportedActionError_Error(t *testing.T) {
	err := &UnsupportedActionError{Kind: "fill", Reason: "value required"}
	assert.Equal(t, "unsupported action: fill (value required)", err.Error())
}
