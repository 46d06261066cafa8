package service

import (
	"context"
	"io"
	"net/http"
	"testing"

	"gym_page_auditor/internal/application/rules"
	"gym_page_auditor/internal/domain/models"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockWebClient is a mock implementation of the WebClient interface
type MockWebClient struct {
	mock.Mock
}

func (m *MockWebClient) Do(ctx context.Context, url string, method string) (*models.FetchedPage, error) {
	args := m.Called(ctx, url, method)
	page, _ := args.Get(0).(*models.FetchedPage)
	return page, args.Error(1)
}

func (m *MockWebClient) onPage(url string, status int, body string) {
	m.On("Do", mock.Anything, url, http.MethodGet).Return(&models.FetchedPage{
		URL:        url,
		FinalURL:   url,
		StatusCode: status,
		Body:       []byte(body),
	}, nil)
}

func testLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testRules(t *testing.T) *rules.Rules {
	t.Helper()
	r, err := rules.Default()
	require.NoError(t, err)
	return r
}
