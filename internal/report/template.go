package report

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultFetchTimeout = 30 * time.Second

// TemplateFetcher provides the timesheet template workbook bytes
type TemplateFetcher interface {
	Fetch() ([]byte, error)
}

// HTTPTemplateFetcher fetches the template from a fixed URL, fresh per call
type HTTPTemplateFetcher struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPTemplateFetcher creates a new HTTPTemplateFetcher
func NewHTTPTemplateFetcher(url string, logger *zap.Logger) *HTTPTemplateFetcher {
	return &HTTPTemplateFetcher{
		url: url,
		httpClient: &http.Client{
			Timeout: defaultFetchTimeout,
		},
		logger: logger,
	}
}

// Fetch downloads the template workbook
func (f *HTTPTemplateFetcher) Fetch() ([]byte, error) {
	f.logger.Debug("Fetching timesheet template", zap.String("url", f.url))

	resp, err := f.httpClient.Get(f.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch template: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("template server returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	f.logger.Info("Timesheet template fetched",
		zap.String("url", f.url),
		zap.Int("bytes", len(data)))

	return data, nil
}
