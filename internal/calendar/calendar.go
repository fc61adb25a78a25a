package calendar

import (
	"time"

	"github.com/username/contact-book-bot/pkg/dateutil"
)

// Calendar answers whether a given date is a day off. The reminder daemon
// uses it to stay quiet on weekends and public holidays.
type Calendar interface {
	IsDayOff(date time.Time) (bool, error)
}

// WeekdayCalendar is the zero-dependency default: Saturday and Sunday are
// days off, everything else is a working day.
type WeekdayCalendar struct{}

// NewWeekdayCalendar creates a WeekdayCalendar
func NewWeekdayCalendar() *WeekdayCalendar {
	return &WeekdayCalendar{}
}

// IsDayOff reports weekends as days off
func (c *WeekdayCalendar) IsDayOff(date time.Time) (bool, error) {
	return dateutil.IsWeekend(date), nil
}
