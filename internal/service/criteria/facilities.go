package criteria

import (
	"fmt"
	"strings"

	"gym_page_auditor/internal/application/rules"
	"gym_page_auditor/internal/domain/models"
	"gym_page_auditor/internal/pkg/errors"
)

const (
	StrategyOpen = "open"
	StrategyCore = "core"
)

// FacilitiesStrategy is one of the two facilities heuristics. They are alternatives and
// never share thresholds.
type FacilitiesStrategy interface {
	// Key is the criterion name the verdict is stored under.
	Key() string
	Evaluate(p *Page) models.Criterion
}

func NewFacilitiesStrategy(name string, cfg *rules.Facilities) (FacilitiesStrategy, error) {
	switch name {
	case StrategyOpen, "":
		return &openFacilities{cfg: cfg}, nil
	case StrategyCore:
		return &coreFacilities{cfg: cfg}, nil
	}
	return nil, errors.New(fmt.Sprintf(`unknown facilities strategy %q`, name))
}

// openFacilities needs MinTerms distinct terms from the open list and a facilities heading.
type openFacilities struct {
	cfg *rules.Facilities
}

func (o *openFacilities) Key() string { return models.CriterionFacilities }

func (o *openFacilities) Evaluate(p *Page) models.Criterion {
	found := matchTerms(o.cfg.Terms, p.Body)
	hasHeading := false
	for _, h := range p.Headings {
		if o.cfg.IsSectionHeading(h) {
			hasHeading = true
			break
		}
	}

	enough := len(found) >= o.cfg.MinTerms
	pass := enough && hasHeading

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d facility terms", len(found))
	if len(found) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(sample(found, o.cfg.SampleSize), ", "))
	}
	b.WriteString(".")
	if hasHeading {
		b.WriteString(" Facilities section heading present.")
	} else {
		b.WriteString(" No facilities or amenities section heading.")
	}
	if !enough {
		fmt.Fprintf(&b, " Action: list more facilities on the page (currently %d, target at least %d).", len(found), o.cfg.MinTerms)
	}
	if !hasHeading {
		b.WriteString(" Action: add a clear 'Facilities' section heading above the facilities list.")
	}

	return models.Criterion{Pass: pass, Evidence: b.String()}
}

// coreFacilities needs every core facility to be mentioned.
type coreFacilities struct {
	cfg *rules.Facilities
}

func (c *coreFacilities) Key() string { return models.CriterionCoreFacilities }

func (c *coreFacilities) Evaluate(p *Page) models.Criterion {
	var found, missing []string
	for _, term := range c.cfg.Core {
		if term.Match(p.Body) {
			found = append(found, term.Label)
		} else {
			missing = append(missing, term.Label)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d of %d core facilities", len(found), len(c.cfg.Core))
	if len(found) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(sample(found, c.cfg.SampleSize), ", "))
	}
	b.WriteString(".")
	if len(missing) > 0 {
		fmt.Fprintf(&b, " Missing: %s. Action: mention every core facility on the page (missing %d of %d).",
			strings.Join(missing, ", "), len(missing), len(c.cfg.Core))
	}

	return models.Criterion{Pass: len(missing) == 0, Evidence: b.String()}
}

// matchTerms returns the labels of the distinct terms found in text, in vocabulary order.
func matchTerms(terms []rules.Term, text string) []string {
	var found []string
	seen := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		if _, dup := seen[term.Key]; dup {
			continue
		}
		if term.Match(text) {
			seen[term.Key] = struct{}{}
			found = append(found, term.Label)
		}
	}
	return found
}

func sample(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
