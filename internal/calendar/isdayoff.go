package calendar

import (
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	isdayoffBaseURL    = "https://isdayoff.ru"
	defaultHTTPTimeout = 10 * time.Second
	defaultCacheTTL    = 24 * time.Hour
)

// IsDayOffCalendar implements Calendar using the isdayoff.ru API, which
// knows public holidays and transferred working days, not just weekends.
// Whole months are fetched at once and cached with a TTL.
type IsDayOffCalendar struct {
	baseURL    string
	country    string
	httpClient *http.Client
	logger     *zap.Logger
	cacheTTL   time.Duration
	cacheMu    sync.RWMutex
	cache      map[string]*cachedMonth
}

type cachedMonth struct {
	days      string // one status char per day of month
	fetchedAt time.Time
}

// NewIsDayOffCalendar creates an isdayoff.ru-backed calendar for the
// given ISO country code (ru, ua, kz, by, us)
func NewIsDayOffCalendar(country string, cacheTTL time.Duration, logger *zap.Logger) *IsDayOffCalendar {
	if cacheTTL == 0 {
		cacheTTL = defaultCacheTTL
	}

	return &IsDayOffCalendar{
		baseURL: isdayoffBaseURL,
		country: country,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		logger:   logger,
		cacheTTL: cacheTTL,
		cache:    make(map[string]*cachedMonth),
	}
}

// IsDayOff checks the date against the fetched month data
func (c *IsDayOffCalendar) IsDayOff(date time.Time) (bool, error) {
	days, err := c.monthData(date.Year(), date.Month())
	if err != nil {
		return false, err
	}

	index := date.Day() - 1
	if index < 0 || index >= len(days) {
		return false, fmt.Errorf("day %d missing from isdayoff response (%d days)", date.Day(), len(days))
	}

	// Status chars: 0 = workday, 1 = day off, 2 = shortened workday
	return days[index] == '1', nil
}

func (c *IsDayOffCalendar) monthData(year int, month time.Month) (string, error) {
	cacheKey := fmt.Sprintf("%d-%02d", year, month)

	c.cacheMu.RLock()
	if cached, ok := c.cache[cacheKey]; ok {
		if time.Since(cached.fetchedAt) < c.cacheTTL {
			c.cacheMu.RUnlock()
			return cached.days, nil
		}
	}
	c.cacheMu.RUnlock()

	days, err := c.fetchMonth(year, month)
	if err != nil {
		return "", err
	}

	c.cacheMu.Lock()
	c.cache[cacheKey] = &cachedMonth{
		days:      days,
		fetchedAt: time.Now(),
	}
	c.cacheMu.Unlock()

	return days, nil
}

// fetchMonth fetches the bulk month status string from the API.
// Response is one digit per day, e.g. "0000011000001..." for a month
// starting on a Monday.
func (c *IsDayOffCalendar) fetchMonth(year int, month time.Month) (string, error) {
	url := fmt.Sprintf("%s/api/getdata?year=%d&month=%02d&cc=%s", c.baseURL, year, int(month), c.country)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return "", fmt.Errorf("isdayoff request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read isdayoff response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("isdayoff returned status %d: %s", resp.StatusCode, string(body))
	}

	days := string(body)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if len(days) != daysInMonth {
		return "", fmt.Errorf("isdayoff returned %d day entries for %d-%02d, want %d",
			len(days), year, month, daysInMonth)
	}

	c.logger.Debug("Fetched month from isdayoff",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.String("days", days))

	return days, nil
}
