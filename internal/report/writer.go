// Package report renders an audit report as JSON, CSV, HTML and Markdown.
package report

import (
	"io"

	"gym_page_auditor/internal/domain/models"
)

// Writer renders a report to its output.
type Writer interface {
	Write(report *models.Report) (int, error)
}

type baseWriter struct {
	output io.Writer
}

func passLabel(pass bool) string {
	if pass {
		return "Pass"
	}
	return "Fail"
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// facilitiesColumn picks the facilities criterion key used by the report's gyms.
func facilitiesColumn(report *models.Report) (key, label string) {
	for _, g := range report.Gyms {
		if k, _, ok := g.FacilitiesCriterion(); ok {
			key = k
			break
		}
	}
	if key == models.CriterionCoreFacilities {
		return key, "Core facilities"
	}
	return models.CriterionFacilities, "Facilities"
}
