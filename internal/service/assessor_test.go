package service

import (
	"testing"

	"gym_page_auditor/internal/domain/models"
	"gym_page_auditor/internal/service/criteria"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const membershipFixture = `<!DOCTYPE html>
<html>
<head>
  <title>Example Gym | Fitness &amp; Wellbeing</title>
  <meta name="description" content="Our gym in Example.">
</head>
<body>
  <nav>
    <a href="/">Home</a>
    <a href="/gyms">Gyms</a>
    <a href="/gyms/example/membership-options">Membership options</a>
    <a href="/gyms/example/timetable">Timetable</a>
  </nav>
  <h1>Example Fitness &amp; Wellbeing Gym</h1>
  <h2>About the club</h2>
  <p>A gym with a sauna.</p>
  <img src="/images/site-logo.png" alt="Example logo">
  <img src="/images/gym-floor.jpg" alt="Gym floor">
  <img src="/images/studio.jpg" alt="Studio">
  <img src="/images/pool.jpg" alt="Pool">
</body>
</html>`

func newTestAssessor(t *testing.T, strategy string) *Assessor {
	t.Helper()
	a, err := NewAssessor(testLogger(), testRules(t), strategy)
	require.NoError(t, err)
	return a
}

func TestAssessMembershipFixture(t *testing.T) {
	a := newTestAssessor(t, criteria.StrategyOpen)

	got, err := a.Assess("https://www.nuffieldhealth.com/gyms/example", []byte(membershipFixture))
	require.NoError(t, err)

	assert.Equal(t, "example", got.Slug)
	assert.Equal(t, "Example Fitness & Wellbeing Gym", got.GymName)
	assert.True(t, got.IsLikelyGymPage)

	imagery := got.Criteria[models.CriterionImagery]
	assert.False(t, imagery.Pass)
	assert.Contains(t, imagery.Evidence, "currently 3, target at least 8")

	facilities := got.Criteria[models.CriterionFacilities]
	assert.False(t, facilities.Pass)

	assert.True(t, got.JoinRoutePresent)
	assert.Equal(t, criteria.EvidenceMembershipOptions, got.JoinRouteEvidence)
	assert.Equal(t, models.FixPriorityHigh, got.FixPriority)

	require.NotNil(t, got.ClubDescription)
	assert.Equal(t, models.ToneNeedsImprovement, got.ClubDescription.Tone)
}

func TestAssessCoreStrategyKey(t *testing.T) {
	a := newTestAssessor(t, criteria.StrategyCore)
	assert.Equal(t, models.CriterionCoreFacilities, a.FacilitiesKey())

	got, err := a.Assess("https://www.nuffieldhealth.com/gyms/example", []byte(membershipFixture))
	require.NoError(t, err)

	_, hasOpen := got.Criteria[models.CriterionFacilities]
	assert.False(t, hasOpen)
	core, ok := got.Criteria[models.CriterionCoreFacilities]
	require.True(t, ok)
	assert.False(t, core.Pass)
	assert.Contains(t, core.Evidence, "Missing: steam room, swimming pool, personal training, classes.")
}

func TestAssessGymNameFallbacks(t *testing.T) {
	a := newTestAssessor(t, criteria.StrategyOpen)

	tests := []struct {
		name string
		url  string
		html string
		want string
	}{
		{
			name: "first heading",
			url:  "https://example.test/gyms/bath",
			html: `<html><head><title>T</title></head><body><h1> Bath   Gym </h1></body></html>`,
			want: "Bath Gym",
		},
		{
			name: "titleized slug",
			url:  "https://example.test/gyms/merton-abbey",
			html: `<html><head><title>T</title></head><body><h2>Welcome</h2></body></html>`,
			want: "Merton Abbey",
		},
		{
			name: "document title",
			url:  "https://example.test/",
			html: `<html><head><title>Landing</title></head><body></body></html>`,
			want: "Landing",
		},
		{
			name: "empty document",
			url:  "https://example.test/",
			html: ``,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Assess(tt.url, []byte(tt.html))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.GymName)
		})
	}
}

func TestNewAssessorRejectsUnknownStrategy(t *testing.T) {
	_, err := NewAssessor(testLogger(), testRules(t), "weighted")
	assert.Error(t, err)
}
