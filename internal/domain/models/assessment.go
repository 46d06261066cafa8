package models

// Criterion keys used in AssessmentResult.Criteria.
const (
	CriterionFacilities     = "facilities"
	CriterionCoreFacilities = "coreFacilities"
	CriterionImagery        = "imagery"
)

type FixPriority string

const (
	FixPriorityLow    FixPriority = "Low"
	FixPriorityMedium FixPriority = "Medium"
	FixPriorityHigh   FixPriority = "High"
)

type Tone string

const (
	ToneAppealing        Tone = "Appealing"
	ToneNeedsImprovement Tone = "Needs improvement"
)

// Criterion is a single Pass/Fail verdict with the prose that explains it.
type Criterion struct {
	Pass     bool   `json:"pass"`
	Evidence string `json:"evidence"`
}

// ClubDescription grades the heading and meta description copy.
type ClubDescription struct {
	Tone Tone   `json:"tone"`
	Text string `json:"text"`
}

// JoinRoute is the outcome of the call-to-action check.
type JoinRoute struct {
	Present  bool
	Evidence string
}

// AssessmentResult is built once per fetched page and never mutated afterwards.
type AssessmentResult struct {
	URL               string               `json:"url"`
	Slug              string               `json:"slug"`
	GymName           string               `json:"gymName"`
	IsLikelyGymPage   bool                 `json:"isLikelyGymPage"`
	Criteria          map[string]Criterion `json:"criteria"`
	ClubDescription   *ClubDescription     `json:"clubDescription,omitempty"`
	JoinRoutePresent  bool                 `json:"joinRoutePresent"`
	JoinRouteEvidence string               `json:"joinRouteEvidence"`
	FixPriority       FixPriority          `json:"fixPriority"`
}

// FacilitiesCriterion returns whichever facilities variant the page was scored with.
func (r *AssessmentResult) FacilitiesCriterion() (string, Criterion, bool) {
	for _, key := range []string{CriterionFacilities, CriterionCoreFacilities} {
		if c, ok := r.Criteria[key]; ok {
			return key, c, true
		}
	}
	return "", Criterion{}, false
}
