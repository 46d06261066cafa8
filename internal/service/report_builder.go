package service

import (
	"sort"
	"time"

	"gym_page_auditor/internal/domain/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// BuildReport sorts gyms by name with a locale-aware, case-insensitive comparison and
// summarises them. gyms is sorted in place.
func BuildReport(source string, candidateCount int, gyms []*models.AssessmentResult, skipped []models.SkippedPage, generatedAt time.Time) *models.Report {
	// a Collator keeps buffers, one per call
	col := collate.New(language.BritishEnglish, collate.IgnoreCase, collate.Loose)
	sort.SliceStable(gyms, func(i, j int) bool {
		if c := col.CompareString(gyms[i].GymName, gyms[j].GymName); c != 0 {
			return c < 0
		}
		return gyms[i].URL < gyms[j].URL
	})
	if gyms == nil {
		gyms = []*models.AssessmentResult{}
	}

	return &models.Report{
		GeneratedAt:    generatedAt.UTC(),
		Source:         source,
		CandidateCount: candidateCount,
		IncludedCount:  len(gyms),
		Summary:        Summarize(gyms),
		Gyms:           gyms,
		Skipped:        skipped,
	}
}

// Summarize counts verdicts over gyms. Every priority level is present in the result.
func Summarize(gyms []*models.AssessmentResult) models.Summary {
	s := models.Summary{
		Gyms:           len(gyms),
		CriteriaPassed: make(map[string]int),
		FixPriority: map[models.FixPriority]int{
			models.FixPriorityHigh:   0,
			models.FixPriorityMedium: 0,
			models.FixPriorityLow:    0,
		},
	}
	for _, g := range gyms {
		for key, c := range g.Criteria {
			if _, ok := s.CriteriaPassed[key]; !ok {
				s.CriteriaPassed[key] = 0
			}
			if c.Pass {
				s.CriteriaPassed[key]++
			}
		}
		if g.JoinRoutePresent {
			s.JoinRoutePresent++
		}
		if g.ClubDescription != nil && g.ClubDescription.Tone == models.ToneAppealing {
			s.AppealingDescriptions++
		}
		s.FixPriority[g.FixPriority]++
	}
	return s
}
