package calendar

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	defaultCacheTTL    = 24 * time.Hour
)

// HolidayAPICalendar implements Calendar using a per-year public holiday
// JSON feed (timor.tech format for the "CN" region)
type HolidayAPICalendar struct {
	apiURL     string // URL template with {year} and optional {region} placeholders
	region     string
	httpClient *http.Client
	logger     *zap.Logger
	cacheTTL   time.Duration
	cache      map[int]*cachedYear
	cacheMu    sync.RWMutex
}

type cachedYear struct {
	holidays  map[string]bool // "MM-DD" -> is public holiday
	fetchedAt time.Time
}

// holidayYearResponse represents the holiday feed JSON structure.
// The feed also lists compensatory working days (调休) with holiday=false;
// those entries are not public holidays.
type holidayYearResponse struct {
	Code    int                     `json:"code"`
	Holiday map[string]holidayEntry `json:"holiday"` // key: "MM-DD"
}

type holidayEntry struct {
	Holiday bool   `json:"holiday"`
	Name    string `json:"name"`
	Date    string `json:"date"`
}

// NewHolidayAPICalendar creates a new HolidayAPICalendar instance
func NewHolidayAPICalendar(apiURL, region string, cacheTTL time.Duration, logger *zap.Logger) *HolidayAPICalendar {
	if cacheTTL == 0 {
		cacheTTL = defaultCacheTTL
	}

	return &HolidayAPICalendar{
		apiURL: apiURL,
		region: region,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		logger:   logger,
		cacheTTL: cacheTTL,
		cache:    make(map[int]*cachedYear),
	}
}

// IsHoliday checks if the given date is a public holiday
func (c *HolidayAPICalendar) IsHoliday(date time.Time) (bool, error) {
	year := date.Year()

	c.cacheMu.RLock()
	cached, ok := c.cache[year]
	if ok && time.Since(cached.fetchedAt) < c.cacheTTL {
		holiday := cached.holidays[date.Format("01-02")]
		c.cacheMu.RUnlock()
		return holiday, nil
	}
	c.cacheMu.RUnlock()

	holidays, err := c.fetchYear(year)
	if err != nil {
		return false, err
	}

	c.cacheMu.Lock()
	c.cache[year] = &cachedYear{
		holidays:  holidays,
		fetchedAt: time.Now(),
	}
	c.cacheMu.Unlock()

	return holidays[date.Format("01-02")], nil
}

// fetchYear downloads the holiday feed for an entire year
func (c *HolidayAPICalendar) fetchYear(year int) (map[string]bool, error) {
	url := strings.ReplaceAll(c.apiURL, "{year}", strconv.Itoa(year))
	url = strings.ReplaceAll(url, "{region}", c.region)

	c.logger.Debug("Fetching holiday feed",
		zap.String("url", url),
		zap.Int("year", year),
		zap.String("region", c.region))

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holiday feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday feed returned status %d", resp.StatusCode)
	}

	var feed holidayYearResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to parse holiday feed: %w", err)
	}

	holidays, err := parseYearResponse(&feed)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Holiday feed fetched",
		zap.Int("year", year),
		zap.String("region", c.region),
		zap.Int("holidays", len(holidays)))

	return holidays, nil
}

// parseYearResponse converts the feed response to a "MM-DD" -> holiday map
func parseYearResponse(feed *holidayYearResponse) (map[string]bool, error) {
	if feed.Code != 0 {
		return nil, fmt.Errorf("holiday feed returned code %d", feed.Code)
	}

	holidays := make(map[string]bool, len(feed.Holiday))
	for key, entry := range feed.Holiday {
		if !entry.Holiday {
			// Compensatory working day, not a holiday
			continue
		}
		holidays[key] = true
	}

	return holidays, nil
}

// ClearCache clears the cached year data
func (c *HolidayAPICalendar) ClearCache() {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	c.cache = make(map[int]*cachedYear)
	c.logger.Info("Holiday cache cleared")
}
