package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/username/contact-book-bot/internal/addressbook"
	"github.com/username/contact-book-bot/internal/storage"
	"github.com/username/contact-book-bot/pkg/dateutil"
	"go.uber.org/zap"
)

// Session is the interactive command loop around one address book. Input
// is lower-cased and split on whitespace, so stored names end up
// lower-case; lookups later match because they go through the same
// normalization. All recoverable errors come back as user-facing text,
// the loop itself never dies on bad input.
type Session struct {
	book          *addressbook.Book
	store         *storage.Store
	logger        *zap.Logger
	defaultWindow int
	now           func() time.Time
}

// NewSession creates a session over the given book and store
func NewSession(book *addressbook.Book, store *storage.Store, defaultWindow int, logger *zap.Logger) *Session {
	return &Session{
		book:          book,
		store:         store,
		logger:        logger,
		defaultWindow: defaultWindow,
		now:           dateutil.Today,
	}
}

// Run reads commands from in and writes responses to out until the user
// quits or input ends. The book is saved on exit.
func (s *Session) Run(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Welcome to the assistant bot!")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter a command: ")
		if !scanner.Scan() {
			break
		}

		response, quit := s.Dispatch(scanner.Text())
		if response != "" {
			fmt.Fprintln(out, response)
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if err := s.store.Save(s.book); err != nil {
		return fmt.Errorf("failed to save book on exit: %w", err)
	}
	return nil
}

// Dispatch executes one command line and returns the response text and
// whether the session should end
func (s *Session) Dispatch(line string) (string, bool) {
	args := strings.Fields(strings.ToLower(line))
	if len(args) == 0 {
		return "", false
	}

	command := args[0]
	args = args[1:]

	s.logger.Debug("Dispatching command",
		zap.String("command", command),
		zap.Int("args", len(args)))

	switch command {
	case "close", "exit":
		return "Good bye!", true
	case "hello":
		return "How can I help you?", false
	case "help":
		return s.helpText(), false
	case "add":
		return s.addContact(args), false
	case "change":
		return s.changeContact(args), false
	case "phone":
		return s.showPhone(args), false
	case "all":
		return s.showAll(), false
	case "add-birthday":
		return s.addBirthday(args), false
	case "show-birthday":
		return s.showBirthday(args), false
	case "birthdays":
		return s.birthdays(args), false
	default:
		return "Invalid command.", false
	}
}

// addContact creates the contact if needed and appends the phone
func (s *Session) addContact(args []string) string {
	if len(args) < 2 {
		return "Please provide both name and phone."
	}
	name, phone := args[0], args[1]

	record, found := s.book.Find(name)
	message := "Contact updated."
	if !found {
		record = addressbook.NewRecord(name)
		s.book.Add(record)
		message = "Contact added."
	}

	if err := record.AddPhone(phone); err != nil {
		return err.Error()
	}
	return message
}

// changeContact replaces all of the contact's phones with the given one
func (s *Session) changeContact(args []string) string {
	if len(args) < 2 {
		return "Please provide both name and phone."
	}
	name, phone := args[0], args[1]

	record, found := s.book.Find(name)
	if !found {
		return "Contact not found. Give correct name, Please."
	}

	// Validate before dropping the old numbers
	if _, err := addressbook.NewPhone(phone); err != nil {
		return err.Error()
	}

	record.ClearPhones()
	if err := record.AddPhone(phone); err != nil {
		return err.Error()
	}
	return "Contact changed."
}

func (s *Session) showPhone(args []string) string {
	if len(args) < 1 {
		return "Please provide a name."
	}

	record, found := s.book.Find(args[0])
	if !found {
		return "Contact not found. Give correct name, Please."
	}
	return record.String()
}

func (s *Session) showAll() string {
	if s.book.Len() == 0 {
		return "No contacts saved."
	}

	var lines []string
	for _, record := range s.book.Records() {
		lines = append(lines, record.String())
	}
	return strings.Join(lines, "\n")
}

func (s *Session) addBirthday(args []string) string {
	if len(args) < 2 {
		return "Please provide both name and birthday."
	}
	name, birthday := args[0], args[1]

	record, found := s.book.Find(name)
	if !found {
		return "Contact not found. Give correct name, Please."
	}

	if err := record.SetBirthday(birthday); err != nil {
		return err.Error()
	}
	return "Birthday added."
}

func (s *Session) showBirthday(args []string) string {
	if len(args) < 1 {
		return "Please provide a name."
	}
	name := args[0]

	record, found := s.book.Find(name)
	if !found {
		return "Contact not found. Give correct name, Please."
	}

	birthday, ok := record.Birthday()
	if !ok {
		return fmt.Sprintf("No birthday given for %s", name)
	}
	return fmt.Sprintf("Contact name: %s, birthday: %s", name, birthday)
}

func (s *Session) birthdays(args []string) string {
	windowDays := s.defaultWindow
	if len(args) > 0 {
		days, err := strconv.Atoi(args[0])
		if err != nil || days < 0 {
			return "Please provide the number of days as a non-negative integer."
		}
		windowDays = days
	}

	reminders := s.book.UpcomingBirthdays(s.now(), windowDays)
	if len(reminders) == 0 {
		return "No birthdays next week"
	}

	lines := make([]string, len(reminders))
	for i, reminder := range reminders {
		lines[i] = fmt.Sprintf("Contact name: %s, birthday: %s",
			reminder.Name, reminder.Occurrence.Format(addressbook.BirthdayLayout))
	}
	return strings.Join(lines, "\n")
}

func (s *Session) helpText() string {
	return strings.Join([]string{
		"Available commands:",
		"  hello                              - greeting",
		"  add <name> <phone>                 - add a contact or another phone",
		"  change <name> <phone>              - replace a contact's phones",
		"  phone <name>                       - show a contact's phones",
		"  all                                - show all contacts",
		"  add-birthday <name> <DD.MM.YYYY>   - set a contact's birthday",
		"  show-birthday <name>               - show a contact's birthday",
		"  birthdays [days]                   - upcoming birthdays (default window from config)",
		"  close | exit                       - save and quit",
	}, "\n")
}
