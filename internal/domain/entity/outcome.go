package entity

const ErrorPrefix = "Error generating scenarios: "

// Outcome is the result of one moderation run: either Report or Err is set.
type Outcome struct {
	RunID  string
	URL    string
	Report string
	Err    error
	Steps  int
}

func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Text is what the user sees.
func (o Outcome) Text() string {
	if o.Err != nil {
		return ErrorPrefix + o.Err.Error()
	}
	return o.Report
}
