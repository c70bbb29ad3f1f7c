package output

import "time"

type MetricsPort interface {
	ObserveRun(outcome, stage string, duration time.Duration)
	ObserveAction(name string, success bool)
}
