package service

import (
	"context"
	"net/http"
	"time"

	"gym_page_auditor/internal/domain/adaptors"
	"gym_page_auditor/internal/domain/models"
	"gym_page_auditor/internal/pkg/errors"
	"gym_page_auditor/internal/pkg/metrics"
	"gym_page_auditor/internal/pkg/worker_pool"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type GymAuditor interface {
	Run(ctx context.Context, sitemapURL string) (*models.Report, error)
}

// pageOutcome is what one pool item produces: an assessment or a skip.
type pageOutcome struct {
	result  *models.AssessmentResult
	skipped *models.SkippedPage
}

// Auditor drives discovery, the fetch pool and assessment for one sitemap.
type Auditor struct {
	log        *log.Logger
	webClient  adaptors.WebClient
	discoverer *Discoverer
	assessor   *Assessor
	pool       *worker_pool.WorkerPool
	now        func() time.Time
}

func NewAuditor(log *log.Logger, webClient adaptors.WebClient, discoverer *Discoverer, assessor *Assessor, pool *worker_pool.WorkerPool) *Auditor {
	return &Auditor{
		log:        log,
		webClient:  webClient,
		discoverer: discoverer,
		assessor:   assessor,
		pool:       pool,
		now:        time.Now,
	}
}

// Run audits every candidate in the sitemap. A discovery failure aborts the run and returns an
// error matching errors.ErrDiscovery; per-page failures end up in Report.Skipped.
func (a *Auditor) Run(ctx context.Context, sitemapURL string) (*models.Report, error) {
	started := a.now()
	logger := a.log.WithFields(log.Fields{"run_id": uuid.NewString(), "sitemap": sitemapURL})
	logger.Info(`audit started`)

	candidates, err := a.discoverer.Discover(ctx, sitemapURL)
	if err != nil {
		logger.WithError(err).Error(`audit aborted`)
		return nil, err
	}

	outcomes := worker_pool.Map(ctx, a.pool, candidates, a.auditPage)

	var gyms []*models.AssessmentResult
	var skipped []models.SkippedPage
	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			metrics.AuditPagesTotal.WithLabelValues("failed").Inc()
			skipped = append(skipped, models.SkippedPage{URL: o.Item.URL, Reason: errors.Cause(o.Err).Error()})
		case o.Result.skipped != nil:
			metrics.AuditPagesTotal.WithLabelValues("skipped").Inc()
			skipped = append(skipped, *o.Result.skipped)
		case !o.Result.result.IsLikelyGymPage:
			metrics.AuditPagesTotal.WithLabelValues("excluded").Inc()
			logger.WithField("url", o.Item.URL).Debug(`page is not a gym landing page`)
		default:
			metrics.AuditPagesTotal.WithLabelValues("included").Inc()
			observe(o.Result.result)
			gyms = append(gyms, o.Result.result)
		}
	}

	report := BuildReport(sitemapURL, len(candidates), gyms, skipped, a.now())
	metrics.AuditRunDuration.Observe(a.now().Sub(started).Seconds())
	logger.WithFields(log.Fields{
		"candidates": report.CandidateCount,
		"included":   report.IncludedCount,
		"skipped":    len(report.Skipped),
	}).Info(`audit finished`)
	return report, nil
}

func (a *Auditor) auditPage(ctx context.Context, _ int, c models.Candidate) (pageOutcome, error) {
	page, err := a.webClient.Do(ctx, c.URL, http.MethodGet)
	if err != nil {
		return pageOutcome{}, err
	}
	if page.StatusCode >= http.StatusBadRequest {
		status := &errors.StatusError{URL: c.URL, Code: page.StatusCode}
		a.log.WithField("url", c.URL).Warnf(`skipping page with status %d`, page.StatusCode)
		return pageOutcome{skipped: &models.SkippedPage{URL: c.URL, Reason: status.Error()}}, nil
	}

	result, err := a.assessor.Assess(c.URL, page.Body)
	if err != nil {
		return pageOutcome{}, err
	}
	return pageOutcome{result: result}, nil
}

func observe(r *models.AssessmentResult) {
	for key, c := range r.Criteria {
		verdict := "fail"
		if c.Pass {
			verdict = "pass"
		}
		metrics.AuditCriteriaTotal.WithLabelValues(key, verdict).Inc()
	}
	metrics.AuditFixPriorityTotal.WithLabelValues(string(r.FixPriority)).Inc()
}
