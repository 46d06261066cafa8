package models

import "time"

// Summary aggregates counts over Report.Gyms.
type Summary struct {
	Gyms                  int                 `json:"gyms"`
	CriteriaPassed        map[string]int      `json:"criteriaPassed"`
	JoinRoutePresent      int                 `json:"joinRoutePresent"`
	AppealingDescriptions int                 `json:"appealingDescriptions"`
	FixPriority           map[FixPriority]int `json:"fixPriority"`
}

type Report struct {
	GeneratedAt    time.Time           `json:"generatedAt"`
	Source         string              `json:"source"`
	CandidateCount int                 `json:"candidateCount"`
	IncludedCount  int                 `json:"includedCount"`
	Summary        Summary             `json:"summary"`
	Gyms           []*AssessmentResult `json:"gyms"`
	Skipped        []SkippedPage       `json:"skipped,omitempty"`
}
