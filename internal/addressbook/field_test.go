package addressbook

import (
	"testing"
)

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid 10 digits", "1234567890", false},
		{"All zeros", "0000000000", false},
		{"Too short", "123456789", true},
		{"Too long", "12345678901", true},
		{"Contains letter", "12345abc90", true},
		{"Contains dash", "123-456-78", true},
		{"Contains space", "123 456 78", true},
		{"Empty string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone, err := NewPhone(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("NewPhone(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if tt.wantErr {
				if !IsValidation(err) {
					t.Errorf("NewPhone(%q) error = %v, want ValidationError", tt.input, err)
				}
				return
			}

			if phone.String() != tt.input {
				t.Errorf("NewPhone(%q).String() = %q, want %q", tt.input, phone.String(), tt.input)
			}
		})
	}
}

func TestNewBirthday(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid date", "24.08.1991", false},
		{"Leap day in leap year", "29.02.2000", false},
		{"Leap day in non-leap year", "29.02.2001", true},
		{"Feb 30", "30.02.1999", true},
		{"Day 31 in 30-day month", "31.04.1999", true},
		{"ISO format rejected", "1991-08-24", true},
		{"Missing leading zeros", "4.8.1991", true},
		{"Garbage", "birthday", true},
		{"Empty string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			birthday, err := NewBirthday(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("NewBirthday(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if tt.wantErr {
				if !IsValidation(err) {
					t.Errorf("NewBirthday(%q) error = %v, want ValidationError", tt.input, err)
				}
				return
			}

			if birthday.String() != tt.input {
				t.Errorf("NewBirthday(%q).String() = %q, want %q", tt.input, birthday.String(), tt.input)
			}
		})
	}
}

func TestNewBirthdayErrorMessage(t *testing.T) {
	_, err := NewBirthday("31.02.2020")
	if err == nil {
		t.Fatal("NewBirthday(31.02.2020) expected error, got nil")
	}

	want := "invalid date format, expected DD.MM.YYYY"
	if err.Error() != want {
		t.Errorf("error message = %q, want %q", err.Error(), want)
	}
}

func TestNameStoresVerbatim(t *testing.T) {
	inputs := []string{"alice", "Alice", "o'brien", "", "  spaced  "}

	for _, input := range inputs {
		if got := NewName(input).String(); got != input {
			t.Errorf("NewName(%q).String() = %q, want input back verbatim", input, got)
		}
	}
}
