package adaptors

import (
	"context"

	"gym_page_auditor/internal/domain/models"
)

// WebClient performs a single request and reports status, body and final URL.
type WebClient interface {
	Do(ctx context.Context, url string, method string) (*models.FetchedPage, error)
}
