package jobs

import "fmt"

// Pipeline step names, used in errors and events.
const (
	StepUpdateInfo  = "update_info"
	StepDiskScan    = "disk_scan"
	StepSceneUpdate = "scene_update"
	StepAutoIgnore  = "auto_ignore"
)

// StepResult is the outcome of one pipeline step for one series.
type StepResult struct {
	Step string
	Err  error
}

// Failed reports whether the step failed.
func (r StepResult) Failed() bool { return r.Err != nil }

func (r StepResult) Error() string {
	if r.Err == nil {
		return r.Step + ": ok"
	}
	return fmt.Sprintf("%s: %v", r.Step, r.Err)
}

func (r StepResult) Unwrap() error { return r.Err }

func stepOK(step string) StepResult { return StepResult{Step: step} }

func stepFailed(step string, err error) StepResult { return StepResult{Step: step, Err: err} }

// RunReport summarizes an import run.
type RunReport struct {
	Attempted int
	Succeeded int
	Failed    int
	// Failures maps series ID to the failed step result.
	Failures map[int64]StepResult
}
