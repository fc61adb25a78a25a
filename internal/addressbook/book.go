package addressbook

import (
	"time"

	"github.com/username/contact-book-bot/pkg/dateutil"
)

// Book is a name-keyed collection of contact records. Names are the
// unique key; adding a record under an existing name replaces the stored
// record (last write wins). Go map iteration order is undefined, so the
// book tracks insertion order explicitly and all listings use it.
//
// A Book is owned by a single session and is not safe for concurrent use.
type Book struct {
	records map[string]*Record
	order   []string
}

// BirthdayReminder is one upcoming-birthday result: who, and on which
// date to congratulate them (weekend birthdays are moved to Monday).
type BirthdayReminder struct {
	Name       string
	Occurrence time.Time
}

// NewBook creates an empty address book
func NewBook() *Book {
	return &Book{
		records: make(map[string]*Record),
	}
}

// Add inserts the record keyed by its name. A record with an existing
// name replaces the old one in place, keeping its original position.
func (b *Book) Add(record *Record) {
	name := record.Name()
	if _, exists := b.records[name]; !exists {
		b.order = append(b.order, name)
	}
	b.records[name] = record
}

// Find returns the record for name, exact match on the stored key
func (b *Book) Find(name string) (*Record, bool) {
	record, ok := b.records[name]
	return record, ok
}

// Delete removes the record for name
func (b *Book) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return &NotFoundError{What: name}
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of records in the book
func (b *Book) Len() int {
	return len(b.records)
}

// Records returns all records in insertion order
func (b *Book) Records() []*Record {
	result := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		result = append(result, b.records[name])
	}
	return result
}

// UpcomingBirthdays returns the contacts whose next birthday anniversary
// falls inside [today, today+windowDays], both ends inclusive, in book
// insertion order.
//
// The window test uses the real anniversary date. The reported date is
// then moved off weekends to the following Monday, so a reported date may
// land past the nominal window end. Contacts without a birthday are
// skipped, as are Feb 29 birthdays when the anniversary year is not a
// leap year.
func (b *Book) UpcomingBirthdays(today time.Time, windowDays int) []BirthdayReminder {
	today = dateutil.StartOfDay(today)
	windowEnd := today.AddDate(0, 0, windowDays)

	var result []BirthdayReminder
	for _, name := range b.order {
		record := b.records[name]
		birthday, ok := record.Birthday()
		if !ok {
			continue
		}

		occurrence, ok := anniversary(birthday, today.Year(), today.Location())
		if ok && occurrence.Before(today) {
			occurrence, ok = anniversary(birthday, today.Year()+1, today.Location())
		}
		if !ok {
			continue
		}

		if occurrence.Before(today) || occurrence.After(windowEnd) {
			continue
		}

		result = append(result, BirthdayReminder{
			Name:       record.Name(),
			Occurrence: dateutil.NextBusinessDay(occurrence),
		})
	}
	return result
}

// anniversary places the birthday's month and day in the given year.
// ok=false when the date does not exist there (Feb 29 in a non-leap year;
// time.Date would silently normalize it to Mar 1).
func anniversary(b Birthday, year int, loc *time.Location) (time.Time, bool) {
	date := time.Date(year, b.Month(), b.Day(), 0, 0, 0, 0, loc)
	if date.Month() != b.Month() || date.Day() != b.Day() {
		return time.Time{}, false
	}
	return date, true
}
