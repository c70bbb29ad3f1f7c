package moderation

import "errors"

// Stage says where a run failed. It is used for logs and metrics only; the user sees the
// underlying error text unchanged.
type Stage string

const (
	StageSession Stage = "session"
	StageAgent   Stage = "agent"
	StageResult  Stage = "result"
)

var ErrEmptyHistory = errors.New("agent history has no extracted content")

type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StageOf returns the stage of a moderation error, or "" for anything else.
func StageOf(err error) Stage {
	var me *Error
	if errors.As(err, &me) {
		return me.Stage
	}
	return ""
}
