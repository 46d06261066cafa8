package handlers

import (
	"sync"

	"gym_page_auditor/internal/domain/models"
)

// ReportStore keeps the most recent report in memory. Nothing is persisted.
type ReportStore struct {
	mu     sync.RWMutex
	latest *models.Report
}

func NewReportStore() *ReportStore {
	return &ReportStore{}
}

func (s *ReportStore) Set(r *models.Report) {
	s.mu.Lock()
	s.latest = r
	s.mu.Unlock()
}

func (s *ReportStore) Latest() (*models.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.latest != nil
}
