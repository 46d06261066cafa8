package report

import (
	"io"
	"strconv"
	"strings"

	"gym_page_auditor/internal/domain/models"

	"github.com/nao1215/markdown"
)

// MarkdownWriter writes a short summary document: run details, counts and one line per gym.
type MarkdownWriter struct {
	baseWriter
}

func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter{output: output}}
}

func (w *MarkdownWriter) Write(report *models.Report) (int, error) {
	key, label := facilitiesColumn(report)
	md := markdown.NewMarkdown(w.output)

	md.H1("Gym landing page audit")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", cell(report.Source)},
			{"Generated", report.GeneratedAt.Format("2006-01-02 15:04 MST")},
			{"Candidates", strconv.Itoa(report.CandidateCount)},
			{"Included", strconv.Itoa(report.IncludedCount)},
			{"Skipped", strconv.Itoa(len(report.Skipped))},
		},
	})
	md.PlainText("")

	s := report.Summary
	md.H2("Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{label + " passed", strconv.Itoa(s.CriteriaPassed[key])},
			{"Imagery passed", strconv.Itoa(s.CriteriaPassed[models.CriterionImagery])},
			{"Join route present", strconv.Itoa(s.JoinRoutePresent)},
			{"Appealing descriptions", strconv.Itoa(s.AppealingDescriptions)},
			{"High priority", strconv.Itoa(s.FixPriority[models.FixPriorityHigh])},
			{"Medium priority", strconv.Itoa(s.FixPriority[models.FixPriorityMedium])},
			{"Low priority", strconv.Itoa(s.FixPriority[models.FixPriorityLow])},
		},
	})
	md.PlainText("")

	md.H2("Gyms")
	md.PlainText("")
	if len(report.Gyms) == 0 {
		md.PlainText("No gym pages were included.")
	} else {
		rows := make([][]string, 0, len(report.Gyms))
		for _, g := range report.Gyms {
			tone := ""
			if g.ClubDescription != nil {
				tone = string(g.ClubDescription.Tone)
			}
			rows = append(rows, []string{
				cell(g.GymName),
				string(g.FixPriority),
				passLabel(g.Criteria[key].Pass),
				passLabel(g.Criteria[models.CriterionImagery].Pass),
				yesNo(g.JoinRoutePresent),
				tone,
			})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Gym", "Priority", label, "Imagery", "Join route", "Description"},
			Rows:   rows,
		})
	}
	md.PlainText("")

	if len(report.Skipped) > 0 {
		md.H2("Skipped pages")
		md.PlainText("")
		items := make([]string, 0, len(report.Skipped))
		for _, sk := range report.Skipped {
			items = append(items, sk.URL+": "+sk.Reason)
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// cell keeps scraped text from breaking the table layout.
func cell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "|", `\|`), "\n", " ")
}
