package addressbook

import (
	"time"
)

// BirthdayLayout is the only accepted input and display format for birthdays
const BirthdayLayout = "02.01.2006"

const phoneLength = 10

// Name is a contact's display name. Any non-structured text is accepted;
// uniqueness is enforced by the Book, not here.
type Name struct {
	value string
}

// NewName creates a Name holding the raw text verbatim
func NewName(value string) Name {
	return Name{value: value}
}

func (n Name) String() string {
	return n.value
}

// Phone is a validated 10-digit phone number
type Phone struct {
	value string
}

// NewPhone validates and creates a Phone. The number must be exactly
// 10 decimal digits, no separators.
func NewPhone(value string) (Phone, error) {
	if len(value) != phoneLength {
		return Phone{}, &ValidationError{Message: "phone must be 10 digits"}
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return Phone{}, &ValidationError{Message: "phone must be 10 digits"}
		}
	}
	return Phone{value: value}, nil
}

func (p Phone) String() string {
	return p.value
}

// Birthday is a calendar date (no time component, no timezone)
type Birthday struct {
	date time.Time
}

// NewBirthday parses a DD.MM.YYYY date string. Calendar-invalid dates
// (Feb 30, day 31 in a 30-day month) are rejected by the parse.
func NewBirthday(value string) (Birthday, error) {
	date, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return Birthday{}, &ValidationError{Message: "invalid date format, expected DD.MM.YYYY"}
	}
	return Birthday{date: date}, nil
}

func (b Birthday) String() string {
	return b.date.Format(BirthdayLayout)
}

// Date returns the stored calendar date at midnight UTC
func (b Birthday) Date() time.Time {
	return b.date
}

// Month returns the birthday month
func (b Birthday) Month() time.Month {
	return b.date.Month()
}

// Day returns the birthday day of month
func (b Birthday) Day() int {
	return b.date.Day()
}
