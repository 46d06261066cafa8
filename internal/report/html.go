package report

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"strings"
	"time"

	"gym_page_auditor/internal/domain/models"
)

//go:embed templates/report.html.tmpl
var templates embed.FS

var htmlTemplate = template.Must(template.ParseFS(templates, "templates/report.html.tmpl"))

// HTMLWriter renders a static page with summary counts and client-side row filtering. Scraped
// text is always escaped as plain text.
type HTMLWriter struct {
	baseWriter
}

func NewHTMLWriter(output io.Writer) *HTMLWriter {
	return &HTMLWriter{baseWriter{output: output}}
}

type countRow struct {
	Label string
	Count int
}

type gymRow struct {
	Name               string
	URL                string
	Priority           string
	Facilities         string
	Imagery            string
	Join               string
	FacilitiesClass    string
	ImageryClass       string
	JoinClass          string
	FacilitiesEvidence string
	ImageryEvidence    string
	Tone               string
	DescriptionText    string
	JoinEvidence       string
	// Failing lists the failing checks, space separated, for the column filter.
	Failing string
}

type htmlView struct {
	Source          string
	GeneratedAt     time.Time
	CandidateCount  int
	IncludedCount   int
	Summary         models.Summary
	CriteriaPassed  []countRow
	Priorities      []countRow
	FacilitiesLabel string
	Rows            []gymRow
	Skipped         []models.SkippedPage
}

func (w *HTMLWriter) Write(report *models.Report) (int, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, newHTMLView(report)); err != nil {
		return 0, err
	}
	return w.output.Write(buf.Bytes())
}

func newHTMLView(report *models.Report) htmlView {
	key, label := facilitiesColumn(report)
	view := htmlView{
		Source:          report.Source,
		GeneratedAt:     report.GeneratedAt,
		CandidateCount:  report.CandidateCount,
		IncludedCount:   report.IncludedCount,
		Summary:         report.Summary,
		FacilitiesLabel: label,
		Skipped:         report.Skipped,
		CriteriaPassed: []countRow{
			{Label: label, Count: report.Summary.CriteriaPassed[key]},
			{Label: "Imagery", Count: report.Summary.CriteriaPassed[models.CriterionImagery]},
		},
	}
	for _, p := range []models.FixPriority{models.FixPriorityHigh, models.FixPriorityMedium, models.FixPriorityLow} {
		view.Priorities = append(view.Priorities, countRow{Label: string(p), Count: report.Summary.FixPriority[p]})
	}

	for _, g := range report.Gyms {
		facilities := g.Criteria[key]
		imagery := g.Criteria[models.CriterionImagery]
		row := gymRow{
			Name:               g.GymName,
			URL:                g.URL,
			Priority:           string(g.FixPriority),
			Facilities:         passLabel(facilities.Pass),
			Imagery:            passLabel(imagery.Pass),
			Join:               yesNo(g.JoinRoutePresent),
			FacilitiesClass:    strings.ToLower(passLabel(facilities.Pass)),
			ImageryClass:       strings.ToLower(passLabel(imagery.Pass)),
			JoinClass:          strings.ToLower(passLabel(g.JoinRoutePresent)),
			FacilitiesEvidence: facilities.Evidence,
			ImageryEvidence:    imagery.Evidence,
			JoinEvidence:       g.JoinRouteEvidence,
		}
		var failing []string
		if !facilities.Pass {
			failing = append(failing, "facilities")
		}
		if !imagery.Pass {
			failing = append(failing, "imagery")
		}
		if !g.JoinRoutePresent {
			failing = append(failing, "join")
		}
		if d := g.ClubDescription; d != nil {
			row.Tone, row.DescriptionText = string(d.Tone), d.Text
			if d.Tone != models.ToneAppealing {
				failing = append(failing, "tone")
			}
		}
		row.Failing = strings.Join(failing, " ")
		view.Rows = append(view.Rows, row)
	}
	return view
}
