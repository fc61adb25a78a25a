package calendar

import (
	"time"

	"go.uber.org/zap"
)

// CompositeCalendar implements Calendar with a fallback strategy.
// Primary: IsDayOffCalendar (API)
// Fallback: WeekdayCalendar (no network)
type CompositeCalendar struct {
	primary  Calendar
	fallback Calendar
	logger   *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(primary, fallback Calendar, logger *zap.Logger) *CompositeCalendar {
	return &CompositeCalendar{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// IsDayOff checks the primary calendar and falls back on error
func (cc *CompositeCalendar) IsDayOff(date time.Time) (bool, error) {
	dayOff, err := cc.primary.IsDayOff(date)
	if err == nil {
		return dayOff, nil
	}

	cc.logger.Warn("Primary calendar failed, falling back to weekday rule",
		zap.Time("date", date),
		zap.Error(err))

	return cc.fallback.IsDayOff(date)
}
