package addressbook

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func mustRecord(t *testing.T, name, phone, birthday string) *Record {
	t.Helper()

	record := NewRecord(name)
	if phone != "" {
		if err := record.AddPhone(phone); err != nil {
			t.Fatalf("AddPhone(%s) unexpected error: %v", phone, err)
		}
	}
	if birthday != "" {
		if err := record.SetBirthday(birthday); err != nil {
			t.Fatalf("SetBirthday(%s) unexpected error: %v", birthday, err)
		}
	}
	return record
}

func TestBookAddFind(t *testing.T) {
	book := NewBook()
	book.Add(mustRecord(t, "alice", "1111111111", ""))

	record, ok := book.Find("alice")
	if !ok {
		t.Fatal("Find(alice) = not found, want the stored record")
	}
	if record.Name() != "alice" {
		t.Errorf("found record name = %q, want alice", record.Name())
	}

	// Lookup is exact and case-sensitive on the stored key
	if _, ok := book.Find("Alice"); ok {
		t.Error("Find(Alice) must miss, keys are case-sensitive as stored")
	}
	if _, ok := book.Find("bob"); ok {
		t.Error("Find on absent name must report ok=false")
	}
}

func TestBookAddReplacesExistingName(t *testing.T) {
	book := NewBook()
	book.Add(mustRecord(t, "alice", "1111111111", "24.08.1991"))
	book.Add(mustRecord(t, "alice", "2222222222", ""))

	if book.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after replacing same name", book.Len())
	}

	record, _ := book.Find("alice")
	want := []string{"2222222222"}
	if diff := cmp.Diff(want, phoneStrings(record)); diff != "" {
		t.Errorf("replacement keeps only the new record's phones (-want +got):\n%s", diff)
	}
	if _, ok := record.Birthday(); ok {
		t.Error("replacement must not carry over the old record's birthday")
	}
}

func TestBookDelete(t *testing.T) {
	book := NewBook()
	book.Add(mustRecord(t, "alice", "", ""))

	if err := book.Delete("alice"); err != nil {
		t.Fatalf("Delete(alice) unexpected error: %v", err)
	}
	if book.Len() != 0 {
		t.Errorf("Len() = %d after delete, want 0", book.Len())
	}

	err := book.Delete("alice")
	if !IsNotFound(err) {
		t.Errorf("Delete on absent name error = %v, want NotFoundError", err)
	}
}

func TestBookRecordsInsertionOrder(t *testing.T) {
	book := NewBook()
	for _, name := range []string{"charlie", "alice", "bob"} {
		book.Add(mustRecord(t, name, "", ""))
	}

	// Replacing an existing name must keep its original position
	book.Add(mustRecord(t, "alice", "1111111111", ""))

	var names []string
	for _, record := range book.Records() {
		names = append(names, record.Name())
	}

	want := []string{"charlie", "alice", "bob"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Records() order mismatch (-want +got):\n%s", diff)
	}
}

func TestUpcomingBirthdays(t *testing.T) {
	// 2024-06-10 is a Monday; 2024-06-15 a Saturday, 2024-06-16 a Sunday
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		birthday   string
		windowDays int
		want       []BirthdayReminder
	}{
		{
			name:       "Weekday birthday inside window",
			birthday:   "12.06.1990",
			windowDays: 7,
			want: []BirthdayReminder{
				{Name: "alice", Occurrence: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)},
			},
		},
		{
			name:       "Saturday birthday reported on Monday",
			birthday:   "15.06.1990",
			windowDays: 7,
			want: []BirthdayReminder{
				{Name: "alice", Occurrence: time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)},
			},
		},
		{
			name:       "Sunday birthday reported on Monday",
			birthday:   "16.06.1990",
			windowDays: 7,
			want: []BirthdayReminder{
				{Name: "alice", Occurrence: time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)},
			},
		},
		{
			name:       "Birthday today is included",
			birthday:   "10.06.1990",
			windowDays: 7,
			want: []BirthdayReminder{
				{Name: "alice", Occurrence: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
			},
		},
		{
			name:       "Window end is inclusive",
			birthday:   "17.06.1990",
			windowDays: 7,
			want: []BirthdayReminder{
				{Name: "alice", Occurrence: time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)},
			},
		},
		{
			name:       "One day past window is excluded",
			birthday:   "18.06.1990",
			windowDays: 7,
			want:       nil,
		},
		{
			name:       "Passed birthday rolls to next year, outside window",
			birthday:   "01.01.1990",
			windowDays: 7,
			want:       nil,
		},
		{
			name:       "Zero window includes only today",
			birthday:   "10.06.1990",
			windowDays: 0,
			want: []BirthdayReminder{
				{Name: "alice", Occurrence: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
			},
		},
		{
			name:       "Zero window excludes tomorrow",
			birthday:   "11.06.1990",
			windowDays: 0,
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := NewBook()
			book.Add(mustRecord(t, "alice", "", tt.birthday))

			got := book.UpcomingBirthdays(today, tt.windowDays)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("UpcomingBirthdays mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpcomingBirthdaysShiftAfterWindowTest(t *testing.T) {
	// The window test runs on the real anniversary date; the weekend
	// shift only changes what gets reported. A Saturday birthday on the
	// window's last day is included and reported two days past the end.
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	book := NewBook()
	book.Add(mustRecord(t, "alice", "", "15.06.1990"))

	got := book.UpcomingBirthdays(today, 5)
	want := []BirthdayReminder{
		{Name: "alice", Occurrence: time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Saturday on window edge (-want +got):\n%s", diff)
	}

	// Conversely a Saturday one day past the window stays excluded even
	// though its shifted date would land back inside a longer report.
	got = book.UpcomingBirthdays(today, 4)
	if len(got) != 0 {
		t.Errorf("birthday past window must stay excluded, got %v", got)
	}
}

func TestUpcomingBirthdaysLeapDay(t *testing.T) {
	book := NewBook()
	book.Add(mustRecord(t, "alice", "", "29.02.2000"))

	t.Run("Non-leap year skips the contact", func(t *testing.T) {
		today := time.Date(2023, 2, 20, 0, 0, 0, 0, time.UTC)
		if got := book.UpcomingBirthdays(today, 14); len(got) != 0 {
			t.Errorf("Feb 29 in 2023 must be skipped, got %v", got)
		}
	})

	t.Run("Leap year includes the contact", func(t *testing.T) {
		today := time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC) // Monday
		got := book.UpcomingBirthdays(today, 7)
		want := []BirthdayReminder{
			// 2024-02-29 is a Thursday, no shift
			{Name: "alice", Occurrence: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("UpcomingBirthdays mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestUpcomingBirthdaysOrderAndSkips(t *testing.T) {
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	book := NewBook()
	book.Add(mustRecord(t, "charlie", "", "14.06.1985"))
	book.Add(mustRecord(t, "alice", "", ""))           // no birthday
	book.Add(mustRecord(t, "bob", "", "11.06.1992"))

	got := book.UpcomingBirthdays(today, 7)
	want := []BirthdayReminder{
		{Name: "charlie", Occurrence: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)},
		{Name: "bob", Occurrence: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)},
	}
	// Insertion order, not date order
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UpcomingBirthdays mismatch (-want +got):\n%s", diff)
	}
}

func TestUpcomingBirthdaysEmptyBook(t *testing.T) {
	book := NewBook()
	book.Add(mustRecord(t, "alice", "1111111111", ""))

	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	for _, window := range []int{0, 7, 365} {
		if got := book.UpcomingBirthdays(today, window); len(got) != 0 {
			t.Errorf("UpcomingBirthdays(window=%d) = %v, want empty", window, got)
		}
	}
}
