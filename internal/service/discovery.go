package service

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"gym_page_auditor/internal/application/rules"
	"gym_page_auditor/internal/domain/adaptors"
	"gym_page_auditor/internal/domain/models"
	"gym_page_auditor/internal/pkg/errors"
	"gym_page_auditor/internal/pkg/markup"

	log "github.com/sirupsen/logrus"
)

var locPattern = regexp.MustCompile(`(?is)<loc>\s*(.*?)\s*</loc>`)

// Discoverer turns a sitemap into the ordered list of gym landing pages to audit.
type Discoverer struct {
	log       *log.Logger
	webClient adaptors.WebClient
	rules     *rules.Discovery
	denylist  *slugDenylist
}

func NewDiscoverer(log *log.Logger, webClient adaptors.WebClient, cfg *rules.Discovery) *Discoverer {
	return &Discoverer{
		log:       log,
		webClient: webClient,
		rules:     cfg,
		denylist:  newSlugDenylist(cfg.Denylist),
	}
}

// Discover fetches sitemapURL and returns deduplicated candidates in sitemap order. Any fetch
// error or status >= 400 is returned wrapped in errors.ErrDiscovery.
func (d *Discoverer) Discover(ctx context.Context, sitemapURL string) ([]models.Candidate, error) {
	page, err := d.webClient.Do(ctx, sitemapURL, http.MethodGet)
	if err != nil {
		d.log.WithError(err).WithField("sitemap", sitemapURL).Error(`failed to fetch sitemap`)
		return nil, errors.Join(errors.ErrDiscovery, err)
	}
	if page.StatusCode >= http.StatusBadRequest {
		d.log.WithField("sitemap", sitemapURL).Errorf(`sitemap returned status %d`, page.StatusCode)
		return nil, errors.Join(errors.ErrDiscovery, &errors.StatusError{URL: sitemapURL, Code: page.StatusCode})
	}

	locations := ParseLocations(page.Body)
	seen := make(map[string]struct{}, len(locations))
	candidates := make([]models.Candidate, 0, len(locations))
	denied := 0

	for _, loc := range locations {
		u, ok := normalizeURL(loc)
		if !ok {
			continue
		}
		slug := strings.ToLower(d.rules.Slug(u.Path))
		if slug == "" {
			continue
		}
		key := u.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if d.denylist.IsDenied(slug) {
			denied++
			continue
		}
		candidates = append(candidates, models.Candidate{URL: key, Slug: slug})
	}

	d.log.WithFields(log.Fields{
		"sitemap":    sitemapURL,
		"locations":  len(locations),
		"denied":     denied,
		"candidates": len(candidates),
	}).Info(`candidate discovery finished`)
	return candidates, nil
}

// ParseLocations returns every <loc> value of a sitemap, entity-decoded, in document order.
func ParseLocations(body []byte) []string {
	matches := locPattern.FindAllSubmatch(body, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if loc := strings.TrimSpace(markup.DecodeXMLEntities(string(m[1]))); loc != "" {
			out = append(out, loc)
		}
	}
	return out
}

// normalizeURL lower-cases scheme and host and drops the fragment and any trailing slash.
func normalizeURL(raw string) (*url.URL, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	u.Scheme = strings.ToLower(u.Scheme)
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, false
	}
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""
	if len(u.Path) > 1 {
		u.Path = strings.TrimRight(u.Path, "/")
		u.RawPath = ""
	}
	return u, true
}
