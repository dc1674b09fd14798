package entities

import "math"

// TreatmentProgress holds the counts derived from a treatment's stage list
type TreatmentProgress struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Skipped    int `json:"skipped"`
	Percentage int `json:"percentage"`
}

// ComputeProgress derives progress metrics from the current stage list.
// It is a pure function and is recomputed on every call; nothing is cached.
func ComputeProgress(stages []*TreatmentStage) TreatmentProgress {
	p := TreatmentProgress{Total: len(stages)}
	for _, s := range stages {
		switch s.Status {
		case StageStatusCompleted:
			p.Completed++
		case StageStatusInProgress:
			p.InProgress++
		case StageStatusSkipped:
			p.Skipped++
		}
	}
	if p.Total > 0 {
		p.Percentage = int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
	}
	return p
}
