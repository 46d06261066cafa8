package report

import (
	"io"
	"strings"

	"gym_page_auditor/internal/domain/models"
)

// CSVWriter writes one row per gym with a fixed column order. Every field is double-quoted
// and embedded quotes are doubled.
type CSVWriter struct {
	baseWriter
}

func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{baseWriter{output: output}}
}

func (w *CSVWriter) Write(report *models.Report) (int, error) {
	key, label := facilitiesColumn(report)

	var b strings.Builder
	writeCSVRow(&b, []string{
		"Gym name", "URL", "Fix priority",
		label, "Imagery", "Join route present",
		label + " evidence", "Imagery evidence",
		"Description tone", "Description text",
		"Join route evidence",
	})

	for _, g := range report.Gyms {
		facilities := g.Criteria[key]
		imagery := g.Criteria[models.CriterionImagery]
		var tone, text string
		if g.ClubDescription != nil {
			tone, text = string(g.ClubDescription.Tone), g.ClubDescription.Text
		}
		writeCSVRow(&b, []string{
			g.GymName, g.URL, string(g.FixPriority),
			passLabel(facilities.Pass), passLabel(imagery.Pass), yesNo(g.JoinRoutePresent),
			facilities.Evidence, imagery.Evidence,
			tone, text,
			g.JoinRouteEvidence,
		})
	}

	return io.WriteString(w.output, b.String())
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
