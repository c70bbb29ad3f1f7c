package action

import (
	"context"
	"fmt"

	"watcher/internal/application/port/output"
	"watcher/internal/domain/entity"
)

var _ output.ActionPort = (*SaveJobAction)(nil)

type SaveJobAction struct {
	logger output.LoggerPort
}

func NewSaveJobAction(logger output.LoggerPort) *SaveJobAction {
	return &SaveJobAction{logger: logger}
}

func (a *SaveJobAction) Name() entity.ActionName { return entity.ActionSaveJob }

func (a *SaveJobAction) Description() string {
	return "Save job details which you found on page"
}

func (a *SaveJobAction) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title":    map[string]interface{}{"type": "string"},
			"company":  map[string]interface{}{"type": "string"},
			"job_link": map[string]interface{}{"type": "string", "description": "Absolute URL of the job posting."},
			"salary":   map[string]interface{}{"type": "string"},
		},
		"required": []string{"title", "company", "job_link"},
	}
}

type saveJobInput struct {
	Title   string  `json:"title"`
	Company string  `json:"company"`
	JobLink string  `json:"job_link"`
	Salary  *string `json:"salary,omitempty"`
}

func (a *SaveJobAction) Execute(ctx context.Context, session output.SessionPort, arguments string) entity.ActionResult {
	var in saveJobInput
	if err := decodeArgs(arguments, &in); err != nil {
		return entity.Failed(err.Error())
	}
	job, err := entity.NewJobRecord(in.Title, in.Company, in.JobLink, in.Salary)
	if err != nil {
		return entity.Failed(err.Error())
	}

	a.logger.Info("Saving job", "title", job.Title, "company", job.Company)

	if err := session.Navigate(ctx, job.Link); err != nil {
		return entity.Failed(fmt.Sprintf("Error opening job link: %v", err))
	}

	return entity.Succeeded(fmt.Sprintf("Saved job: %s at %s", job.Title, job.Company))
}
