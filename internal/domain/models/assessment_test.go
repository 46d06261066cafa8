package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessmentResultJSONRoundTrip(t *testing.T) {
	original := &AssessmentResult{
		URL:             "https://www.nuffieldhealth.com/gyms/bristol",
		Slug:            "bristol",
		GymName:         "Bristol Fitness & Wellbeing Gym",
		IsLikelyGymPage: true,
		Criteria: map[string]Criterion{
			CriterionFacilities: {Pass: false, Evidence: `Found 6 facility terms (gym, sauna, "pool"). Action: list more facilities on the page (currently 6, target at least 10).`},
			CriterionImagery:    {Pass: true, Evidence: "Meaningful images: 9 (target at least 8)."},
		},
		ClubDescription:   &ClubDescription{Tone: ToneNeedsImprovement, Text: "Rewrite the intro <b>copy</b>."},
		JoinRoutePresent:  true,
		JoinRouteEvidence: "Explicit 'Membership options' link found.",
		FixPriority:       FixPriorityMedium,
	}

	raw, err := json.MarshalIndent(original, "", "  ")
	require.NoError(t, err)

	var decoded AssessmentResult
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, *original, decoded)
	assert.Equal(t, original.Criteria[CriterionFacilities].Evidence, decoded.Criteria[CriterionFacilities].Evidence)
}

func TestFacilitiesCriterion(t *testing.T) {
	r := &AssessmentResult{Criteria: map[string]Criterion{
		CriterionCoreFacilities: {Pass: true},
		CriterionImagery:        {Pass: false},
	}}

	key, c, ok := r.FacilitiesCriterion()
	assert.True(t, ok)
	assert.Equal(t, CriterionCoreFacilities, key)
	assert.True(t, c.Pass)

	_, _, ok = (&AssessmentResult{}).FacilitiesCriterion()
	assert.False(t, ok)
}
