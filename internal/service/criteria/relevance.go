package criteria

import (
	"gym_page_auditor/internal/application/rules"
)

// IsLikelyGymPage gates the report. A page qualifies with a timetable/classes/services link and
// gym wording in its title, heading or description, or with both gym and join wording in those
// fields or the start of the body. Closure or promo wording in title, heading or description
// always disqualifies it.
func IsLikelyGymPage(cfg *rules.Relevance, p *Page) bool {
	meta := p.metaText()
	if cfg.Excluded(meta) {
		return false
	}

	subNav := false
	for _, c := range p.Controls {
		if cfg.IsSubNav(c.Text, c.Href) {
			subNav = true
			break
		}
	}
	if subNav && cfg.MentionsGym(meta) {
		return true
	}

	window := meta + " " + p.bodyPrefix(cfg.BodyWindow)
	return cfg.MentionsGym(window) && cfg.MentionsJoin(window)
}
