// Package rules holds the vocabularies and thresholds behind every page check. The embedded
// defaults can be overlaid with a YAML file; the result is compiled once and only read after.
package rules

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gym_page_auditor/internal/pkg/errors"

	"gopkg.in/yaml.v3"
)

//go:embed default_rules.yaml
var defaultRules []byte

// Term is one vocabulary entry matched by a case-insensitive pattern.
type Term struct {
	Key     string `yaml:"key"`
	Label   string `yaml:"label"`
	Pattern string `yaml:"pattern"`

	re *regexp.Regexp
}

func (t Term) Match(text string) bool {
	return t.re != nil && t.re.MatchString(text)
}

type Discovery struct {
	PathPattern string   `yaml:"pathPattern"`
	Denylist    []string `yaml:"denylist"`

	path *regexp.Regexp
}

// Slug returns the gym slug of path, or "" when path is not a gym landing page.
func (d *Discovery) Slug(path string) string {
	m := d.path.FindStringSubmatch(path)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

type Facilities struct {
	MinTerms       int    `yaml:"minTerms"`
	SampleSize     int    `yaml:"sampleSize"`
	HeadingPattern string `yaml:"headingPattern"`
	Terms          []Term `yaml:"terms"`
	Core           []Term `yaml:"core"`

	heading *regexp.Regexp
}

func (f *Facilities) IsSectionHeading(text string) bool {
	return f.heading.MatchString(text)
}

type Imagery struct {
	MinImages      int    `yaml:"minImages"`
	MinModern      int    `yaml:"minModern"`
	MinLazy        int    `yaml:"minLazy"`
	ExcludePattern string `yaml:"excludePattern"`
	ModernPattern  string `yaml:"modernPattern"`

	exclude *regexp.Regexp
	modern  *regexp.Regexp
}

func (i *Imagery) Excluded(attrs string) bool { return i.exclude.MatchString(attrs) }
func (i *Imagery) Modern(source string) bool  { return i.modern.MatchString(source) }

type JoinRoute struct {
	EarlyWindow                  int    `yaml:"earlyWindow"`
	CTATextPattern               string `yaml:"ctaTextPattern"`
	CTAHrefPattern               string `yaml:"ctaHrefPattern"`
	OnlineHrefPattern            string `yaml:"onlineHrefPattern"`
	MembershipOptionsTextPattern string `yaml:"membershipOptionsTextPattern"`
	MembershipOptionsHrefPattern string `yaml:"membershipOptionsHrefPattern"`

	ctaText, ctaHref, online, optionsText, optionsHref *regexp.Regexp
}

func (j *JoinRoute) IsCTA(text, href string) bool {
	return j.ctaText.MatchString(text) || j.ctaHref.MatchString(href)
}

func (j *JoinRoute) IsOnline(href string) bool {
	return j.online.MatchString(href)
}

func (j *JoinRoute) IsMembershipOptions(text, href string) bool {
	return j.optionsText.MatchString(text) || j.optionsHref.MatchString(href)
}

type Tone struct {
	MinSnippetLength int      `yaml:"minSnippetLength"`
	MinAppealHits    int      `yaml:"minAppealHits"`
	MinBenefitHits   int      `yaml:"minBenefitHits"`
	AppealTerms      []string `yaml:"appealTerms"`
	BenefitTerms     []string `yaml:"benefitTerms"`
}

type Relevance struct {
	BodyWindow        int    `yaml:"bodyWindow"`
	SubNavPattern     string `yaml:"subNavPattern"`
	SubNavTextPattern string `yaml:"subNavTextPattern"`
	GymPattern        string `yaml:"gymPattern"`
	JoinPattern       string `yaml:"joinPattern"`
	ExcludePattern    string `yaml:"excludePattern"`

	subNav, subNavText, gym, join, exclude *regexp.Regexp
}

func (r *Relevance) IsSubNav(text, href string) bool {
	return r.subNav.MatchString(href) || r.subNavText.MatchString(text)
}

func (r *Relevance) MentionsGym(text string) bool  { return r.gym.MatchString(text) }
func (r *Relevance) MentionsJoin(text string) bool { return r.join.MatchString(text) }
func (r *Relevance) Excluded(text string) bool     { return r.exclude.MatchString(text) }

type Rules struct {
	Discovery  Discovery  `yaml:"discovery"`
	Facilities Facilities `yaml:"facilities"`
	Imagery    Imagery    `yaml:"imagery"`
	JoinRoute  JoinRoute  `yaml:"joinRoute"`
	Tone       Tone       `yaml:"tone"`
	Relevance  Relevance  `yaml:"relevance"`
}

// Default returns the embedded rule set.
func Default() (*Rules, error) {
	return parse(defaultRules, nil)
}

// Load overlays the YAML file at path on the embedded defaults. An empty path yields the defaults.
func Load(path string) (*Rules, error) {
	if path == "" {
		return Default()
	}
	overlay, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, `failed to read rules file`)
	}
	return parse(defaultRules, overlay)
}

// Marshal renders the effective rules as YAML.
func (r *Rules) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}

func parse(base, overlay []byte) (*Rules, error) {
	r := &Rules{}
	if err := yaml.Unmarshal(base, r); err != nil {
		return nil, errors.Wrap(err, `failed to parse default rules`)
	}
	if overlay != nil {
		if err := yaml.Unmarshal(overlay, r); err != nil {
			return nil, errors.Wrap(err, `failed to parse rules file`)
		}
	}
	if err := r.compile(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Rules) compile() error {
	var errMsg []string
	re := func(name, pattern string) *regexp.Regexp {
		if strings.TrimSpace(pattern) == "" {
			errMsg = append(errMsg, fmt.Sprintf(`%s is empty`, name))
			return nil
		}
		compiled, err := regexp.Compile(`(?i)` + pattern)
		if err != nil {
			errMsg = append(errMsg, fmt.Sprintf(`%s: %v`, name, err))
			return nil
		}
		return compiled
	}
	positive := func(name string, v int) {
		if v <= 0 {
			errMsg = append(errMsg, fmt.Sprintf(`%s must be > 0`, name))
		}
	}
	terms := func(name string, list []Term) {
		if len(list) == 0 {
			errMsg = append(errMsg, fmt.Sprintf(`%s is empty`, name))
		}
		for i := range list {
			list[i].re = re(fmt.Sprintf(`%s[%s]`, name, list[i].Key), list[i].Pattern)
		}
	}

	d := &r.Discovery
	d.path = re(`discovery.pathPattern`, d.PathPattern)
	if d.path != nil && d.path.NumSubexp() < 1 {
		errMsg = append(errMsg, `discovery.pathPattern must capture the slug`)
	}

	f := &r.Facilities
	positive(`facilities.minTerms`, f.MinTerms)
	positive(`facilities.sampleSize`, f.SampleSize)
	f.heading = re(`facilities.headingPattern`, f.HeadingPattern)
	terms(`facilities.terms`, f.Terms)
	terms(`facilities.core`, f.Core)

	im := &r.Imagery
	positive(`imagery.minImages`, im.MinImages)
	positive(`imagery.minModern`, im.MinModern)
	positive(`imagery.minLazy`, im.MinLazy)
	im.exclude = re(`imagery.excludePattern`, im.ExcludePattern)
	im.modern = re(`imagery.modernPattern`, im.ModernPattern)

	j := &r.JoinRoute
	positive(`joinRoute.earlyWindow`, j.EarlyWindow)
	j.ctaText = re(`joinRoute.ctaTextPattern`, j.CTATextPattern)
	j.ctaHref = re(`joinRoute.ctaHrefPattern`, j.CTAHrefPattern)
	j.online = re(`joinRoute.onlineHrefPattern`, j.OnlineHrefPattern)
	j.optionsText = re(`joinRoute.membershipOptionsTextPattern`, j.MembershipOptionsTextPattern)
	j.optionsHref = re(`joinRoute.membershipOptionsHrefPattern`, j.MembershipOptionsHrefPattern)

	t := &r.Tone
	positive(`tone.minSnippetLength`, t.MinSnippetLength)
	positive(`tone.minAppealHits`, t.MinAppealHits)
	positive(`tone.minBenefitHits`, t.MinBenefitHits)
	if len(t.AppealTerms) == 0 || len(t.BenefitTerms) == 0 {
		errMsg = append(errMsg, `tone vocabularies must not be empty`)
	}

	rel := &r.Relevance
	positive(`relevance.bodyWindow`, rel.BodyWindow)
	rel.subNav = re(`relevance.subNavPattern`, rel.SubNavPattern)
	rel.subNavText = re(`relevance.subNavTextPattern`, rel.SubNavTextPattern)
	rel.gym = re(`relevance.gymPattern`, rel.GymPattern)
	rel.join = re(`relevance.joinPattern`, rel.JoinPattern)
	rel.exclude = re(`relevance.excludePattern`, rel.ExcludePattern)

	if len(errMsg) != 0 {
		return errors.Errorf(`invalid rules: %s`, strings.Join(errMsg, "; "))
	}
	return nil
}
