package service

import "gym_page_auditor/internal/domain/models"

// DeriveFixPriority ranks a page by its facilities and imagery verdicts and its join route.
// Join route and tone never add to the fail count.
func DeriveFixPriority(facilitiesPass, imageryPass, joinRoutePresent bool) models.FixPriority {
	failCount := 0
	if !facilitiesPass {
		failCount++
	}
	if !imageryPass {
		failCount++
	}

	switch {
	case !joinRoutePresent || failCount >= 2:
		return models.FixPriorityHigh
	case failCount == 1:
		return models.FixPriorityMedium
	default:
		return models.FixPriorityLow
	}
}
