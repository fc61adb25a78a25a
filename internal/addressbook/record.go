package addressbook

import (
	"fmt"
	"strings"
)

// Record is a single contact: a fixed name, an ordered list of phones
// (duplicates allowed) and an optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a contact with the given name and no phones
func NewRecord(name string) *Record {
	return &Record{
		name: NewName(name),
	}
}

// Name returns the contact's name as stored
func (r *Record) Name() string {
	return r.name.String()
}

// Phones returns the phone numbers in insertion order
func (r *Record) Phones() []Phone {
	return r.phones
}

// Birthday returns the contact's birthday, or ok=false if none is set
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates phone and appends it to the contact's phone list
func (r *Record) AddPhone(phone string) error {
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone entry equal to phone
func (r *Record) RemovePhone(phone string) error {
	for i, p := range r.phones {
		if p.String() == phone {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{What: phone}
}

// EditPhone replaces one occurrence of oldPhone with newPhone. The old
// entry is removed and the new one appended, so the replacement lands at
// the end of the list rather than in the old position.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	if _, ok := r.FindPhone(oldPhone); !ok {
		return &NotFoundError{What: oldPhone}
	}
	p, err := NewPhone(newPhone)
	if err != nil {
		return err
	}
	if err := r.RemovePhone(oldPhone); err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// FindPhone returns the first phone entry equal to phone
func (r *Record) FindPhone(phone string) (Phone, bool) {
	for _, p := range r.phones {
		if p.String() == phone {
			return p, true
		}
	}
	return Phone{}, false
}

// SetBirthday validates and sets the birthday, overwriting any previous one
func (r *Record) SetBirthday(birthday string) error {
	b, err := NewBirthday(birthday)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// ClearPhones drops all phone numbers from the contact
func (r *Record) ClearPhones() {
	r.phones = nil
}

// String renders the contact in the user-facing one-line form
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(phones, "; "))
}
