package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/username/contact-book-bot/internal/addressbook"
	"go.uber.org/zap"
)

// contactState is the on-disk form of one record. Contacts are stored as
// an array so the book's insertion order survives a save/load cycle.
type contactState struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones,omitempty"`
	Birthday string   `json:"birthday,omitempty"` // DD.MM.YYYY
}

type bookState struct {
	Contacts []contactState `json:"contacts"`
}

// Store persists an address book to a JSON file
type Store struct {
	path   string
	logger *zap.Logger
}

// NewStore creates a store backed by the given file path
func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Load reads the book from file. A missing file is not an error: a new
// empty book is returned and the file is created on first Save. Stored
// fields go back through validation, so a hand-edited file with a bad
// phone or date is rejected rather than silently accepted.
func (s *Store) Load() (*addressbook.Book, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("Book file does not exist yet, starting empty",
				zap.String("path", s.path))
			return addressbook.NewBook(), nil
		}
		return nil, fmt.Errorf("failed to read book file: %w", err)
	}

	var state bookState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse book file: %w", err)
	}

	book := addressbook.NewBook()
	for _, contact := range state.Contacts {
		record := addressbook.NewRecord(contact.Name)
		for _, phone := range contact.Phones {
			if err := record.AddPhone(phone); err != nil {
				return nil, fmt.Errorf("contact %q: invalid phone %q: %w", contact.Name, phone, err)
			}
		}
		if contact.Birthday != "" {
			if err := record.SetBirthday(contact.Birthday); err != nil {
				return nil, fmt.Errorf("contact %q: invalid birthday %q: %w", contact.Name, contact.Birthday, err)
			}
		}
		book.Add(record)
	}

	s.logger.Info("Book loaded",
		zap.String("path", s.path),
		zap.Int("contacts", book.Len()))

	return book, nil
}

// Save writes the book to file, creating parent directories as needed
func (s *Store) Save(book *addressbook.Book) error {
	state := bookState{
		Contacts: make([]contactState, 0, book.Len()),
	}

	for _, record := range book.Records() {
		contact := contactState{
			Name: record.Name(),
		}
		for _, phone := range record.Phones() {
			contact.Phones = append(contact.Phones, phone.String())
		}
		if birthday, ok := record.Birthday(); ok {
			contact.Birthday = birthday.String()
		}
		state.Contacts = append(state.Contacts, contact)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal book: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create book directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write book file: %w", err)
	}

	s.logger.Info("Book saved",
		zap.String("path", s.path),
		zap.Int("contacts", book.Len()))

	return nil
}
