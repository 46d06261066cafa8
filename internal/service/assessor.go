package service

import (
	"net/url"
	"strings"

	"gym_page_auditor/internal/application/rules"
	"gym_page_auditor/internal/domain/models"
	"gym_page_auditor/internal/pkg/errors"
	"gym_page_auditor/internal/pkg/markup"
	"gym_page_auditor/internal/service/criteria"

	log "github.com/sirupsen/logrus"
)

// Assessor scores one page. It is safe for concurrent use.
type Assessor struct {
	log        *log.Logger
	rules      *rules.Rules
	facilities criteria.FacilitiesStrategy
	tone       *criteria.ToneEvaluator
}

func NewAssessor(log *log.Logger, r *rules.Rules, strategy string) (*Assessor, error) {
	facilities, err := criteria.NewFacilitiesStrategy(strategy, &r.Facilities)
	if err != nil {
		return nil, err
	}
	return &Assessor{
		log:        log,
		rules:      r,
		facilities: facilities,
		tone:       criteria.NewToneEvaluator(&r.Tone),
	}, nil
}

// FacilitiesKey is the criterion key the configured facilities strategy reports under.
func (a *Assessor) FacilitiesKey() string {
	return a.facilities.Key()
}

// Assess parses raw once and runs the relevance gate and every evaluator against it. Missing
// elements are treated as not found; only a parse failure is returned as an error.
func (a *Assessor) Assess(pageURL string, raw []byte) (*models.AssessmentResult, error) {
	doc, err := markup.ParseBytes(raw)
	if err != nil {
		a.log.WithError(err).WithField("url", pageURL).Error(`failed to parse html`)
		return nil, errors.Wrap(err, `failed to parse html`)
	}
	page := criteria.NewPage(doc)

	facilities := a.facilities.Evaluate(page)
	imagery := criteria.EvaluateImagery(&a.rules.Imagery, page)
	join := criteria.EvaluateJoinRoute(&a.rules.JoinRoute, page)
	slug := a.slugOf(pageURL)

	return &models.AssessmentResult{
		URL:             pageURL,
		Slug:            slug,
		GymName:         gymName(page, slug),
		IsLikelyGymPage: criteria.IsLikelyGymPage(&a.rules.Relevance, page),
		Criteria: map[string]models.Criterion{
			a.facilities.Key():      facilities,
			models.CriterionImagery: imagery,
		},
		ClubDescription:   a.tone.Evaluate(page),
		JoinRoutePresent:  join.Present,
		JoinRouteEvidence: join.Evidence,
		FixPriority:       DeriveFixPriority(facilities.Pass, imagery.Pass, join.Present),
	}, nil
}

// slugOf prefers the gym path pattern and falls back to the last path segment.
func (a *Assessor) slugOf(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	if slug := a.rules.Discovery.Slug(u.Path); slug != "" {
		return strings.ToLower(slug)
	}
	segments := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		return ""
	}
	return strings.ToLower(segments[len(segments)-1])
}

func gymName(p *criteria.Page, slug string) string {
	if p.Heading != "" {
		return p.Heading
	}
	if name := markup.Titleize(slug); name != "" {
		return name
	}
	return p.Title
}
