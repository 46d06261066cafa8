package report

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gym_page_auditor/internal/domain/models"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestReport() *models.Report {
	return &models.Report{
		GeneratedAt:    time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC),
		Source:         "https://www.nuffieldhealth.com/sitemap.xml",
		CandidateCount: 3,
		IncludedCount:  2,
		Summary: models.Summary{
			Gyms:                  2,
			CriteriaPassed:        map[string]int{models.CriterionFacilities: 1, models.CriterionImagery: 0},
			JoinRoutePresent:      1,
			AppealingDescriptions: 1,
			FixPriority:           map[models.FixPriority]int{models.FixPriorityHigh: 2},
		},
		Gyms: []*models.AssessmentResult{
			{
				URL:     "https://www.nuffieldhealth.com/gyms/bath",
				Slug:    "bath",
				GymName: `Bath "Central" Gym | Spa`,
				Criteria: map[string]models.Criterion{
					models.CriterionFacilities: {Pass: true, Evidence: "Found 12 facility terms (gym, sauna). Facilities section heading present."},
					models.CriterionImagery:    {Pass: false, Evidence: "Meaningful images: 3 (target at least 8). Action: add more real photos of the club (currently 3, target at least 8)."},
				},
				ClubDescription:   &models.ClubDescription{Tone: models.ToneAppealing, Text: "Bath <script>alert(1)</script> gym"},
				JoinRoutePresent:  false,
				JoinRouteEvidence: "No clear online join route found.",
				FixPriority:       models.FixPriorityHigh,
			},
			{
				URL:     "https://www.nuffieldhealth.com/gyms/york",
				Slug:    "york",
				GymName: "York Gym",
				Criteria: map[string]models.Criterion{
					models.CriterionFacilities: {Pass: false, Evidence: "Found 2 facility terms."},
					models.CriterionImagery:    {Pass: false, Evidence: "Meaningful images: 0 (target at least 8)."},
				},
				JoinRoutePresent:  true,
				JoinRouteEvidence: "Explicit 'Membership options' link found.",
				FixPriority:       models.FixPriorityHigh,
			},
		},
		Skipped: []models.SkippedPage{{URL: "https://www.nuffieldhealth.com/gyms/leeds", Reason: "returned status 404"}},
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	report := createTestReport()

	n, err := NewJSONWriter(&buf).Write(report)
	require.NoError(t, err)
	assert.Equal(t, buf.Len(), n)
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"generatedAt\""))

	var decoded models.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, report.Gyms, decoded.Gyms)
	assert.Equal(t, report.Summary, decoded.Summary)
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewCSVWriter(&buf).Write(createTestReport())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"Gym name","URL","Fix priority","Facilities","Imagery","Join route present","Facilities evidence","Imagery evidence","Description tone","Description text","Join route evidence"`, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `"Bath ""Central"" Gym | Spa","https://www.nuffieldhealth.com/gyms/bath","High","Pass","Fail","No",`))
	assert.True(t, strings.HasSuffix(lines[2], `"Fail","Fail","Yes","Found 2 facility terms.","Meaningful images: 0 (target at least 8).","","","Explicit 'Membership options' link found."`))
}

func TestCSVWriterCoreFacilitiesColumn(t *testing.T) {
	report := createTestReport()
	for _, g := range report.Gyms {
		g.Criteria[models.CriterionCoreFacilities] = g.Criteria[models.CriterionFacilities]
		delete(g.Criteria, models.CriterionFacilities)
	}

	var buf bytes.Buffer
	_, err := NewCSVWriter(&buf).Write(report)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"Core facilities","Imagery"`)
	assert.Contains(t, buf.String(), `"Found 12 facility terms`)
}

func TestHTMLWriterEscapesScrapedText(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewHTMLWriter(&buf).Write(createTestReport())
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, out, "Bath &#34;Central&#34; Gym | Spa")
	assert.Contains(t, out, `data-fail="imagery join"`)
	assert.Contains(t, out, `data-fail="facilities imagery"`)
	assert.Contains(t, out, `id="filter-text"`)
	assert.Contains(t, out, "Skipped pages")
	assert.Contains(t, out, "<tr><th>High priority</th><td>2</td></tr>")
}

func TestHTMLViewFailingColumn(t *testing.T) {
	report := createTestReport()
	report.Gyms[1].ClubDescription = &models.ClubDescription{Tone: models.ToneNeedsImprovement, Text: "Rewrite the intro."}

	view := newHTMLView(report)

	require.Len(t, view.Rows, 2)
	assert.Equal(t, "imagery join", view.Rows[0].Failing)
	assert.Equal(t, "facilities imagery tone", view.Rows[1].Failing)
	assert.Equal(t, "Needs improvement", view.Rows[1].Tone)
}

func TestMarkdownWriter(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewMarkdownWriter(&buf).Write(createTestReport())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "# Gym landing page audit")
	assert.Contains(t, out, "## Summary")
	assert.Contains(t, out, `"Central"`)
	assert.Contains(t, out, `\|`)
	assert.Contains(t, out, "York Gym")
	assert.Contains(t, out, "https://www.nuffieldhealth.com/gyms/leeds: returned status 404")
}

func TestFileSinkWriteAll(t *testing.T) {
	logger := log.New()
	logger.SetOutput(io.Discard)
	dir := filepath.Join(t.TempDir(), "public")

	sink := NewFileSink(dir, logger)
	require.NoError(t, sink.WriteAll(createTestReport()))

	for _, name := range []string{JSONFile, CSVFile, HTMLFile, MarkdownFile} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.NotZero(t, info.Size(), name)
	}
}

func TestFileSinkWriteAllFailsOnFileInPlaceOfDir(t *testing.T) {
	logger := log.New()
	logger.SetOutput(io.Discard)
	path := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	assert.Error(t, NewFileSink(path, logger).WriteAll(createTestReport()))
}
