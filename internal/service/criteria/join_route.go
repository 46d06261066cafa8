package criteria

import (
	"gym_page_auditor/internal/application/rules"
	"gym_page_auditor/internal/domain/models"
)

const (
	EvidenceMembershipOptions = "Explicit 'Membership options' link found."
	EvidenceOnlineJoin        = "Join call to action appears early on the page and links to an online join route."
	EvidenceNoJoinRoute       = "No clear online join route found. Action: add a prominent 'Join online' or 'Membership options' link near the top of the page."
)

// EvaluateJoinRoute passes on an explicit membership options link, or when the CTA candidates
// include an online join target and at least one of them sits inside the early window.
func EvaluateJoinRoute(cfg *rules.JoinRoute, p *Page) models.JoinRoute {
	online, early := false, false
	for _, c := range p.Controls {
		if cfg.IsMembershipOptions(c.Text, c.Href) {
			return models.JoinRoute{Present: true, Evidence: EvidenceMembershipOptions}
		}
		if !cfg.IsCTA(c.Text, c.Href) {
			continue
		}
		if cfg.IsOnline(c.Href) {
			online = true
		}
		if c.Index < cfg.EarlyWindow {
			early = true
		}
	}

	if online && early {
		return models.JoinRoute{Present: true, Evidence: EvidenceOnlineJoin}
	}
	return models.JoinRoute{Present: false, Evidence: EvidenceNoJoinRoute}
}
