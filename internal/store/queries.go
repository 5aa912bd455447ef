package store

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/birthdaybook/internal/models"
)

// Derived queries are recomputed on demand from the current in-memory state;
// nothing here is cached or persisted separately. All filters keep the
// store's natural insertion order.

// Clients returns a copy of the active user's client collection.
func (s *Store) Clients() []models.Client {
	return slices.Clone(s.clients)
}

// Messages returns a copy of the active user's message collection.
func (s *Store) Messages() []models.BirthdayMessage {
	return slices.Clone(s.messages)
}

// ClientById returns the client matching id.
func (s *Store) ClientById(id string) (models.Client, bool) {
	idx := slices.IndexFunc(s.clients, func(c models.Client) bool { return c.Id == id })
	if idx < 0 {
		return models.Client{}, false
	}
	return s.clients[idx], true
}

// TodaysBirthdays returns the clients whose birthdate month and day equal
// today's, year ignored.
func (s *Store) TodaysBirthdays() []models.Client {
	today := s.now()
	result := make([]models.Client, 0)
	for _, c := range s.clients {
		if c.Birthdate.Month() == today.Month() && c.Birthdate.Day() == today.Day() {
			result = append(result, c)
		}
	}
	return result
}

// MonthBirthdays returns the clients whose birthdate month equals the
// current month, day and year ignored.
func (s *Store) MonthBirthdays() []models.Client {
	today := s.now()
	result := make([]models.Client, 0)
	for _, c := range s.clients {
		if c.Birthdate.Month() == today.Month() {
			result = append(result, c)
		}
	}
	return result
}

// MonthlyMessages returns the messages sent within the current calendar
// month and year.
func (s *Store) MonthlyMessages() []models.BirthdayMessage {
	now := s.now()
	result := make([]models.BirthdayMessage, 0)
	for _, m := range s.messages {
		if m.SentDate.Year() == now.Year() && m.SentDate.Month() == now.Month() {
			result = append(result, m)
		}
	}
	return result
}

// SearchClients returns the clients whose name or email contains term,
// case-insensitively. An empty term matches every client.
func (s *Store) SearchClients(term string) []models.Client {
	t := strings.ToLower(term)
	result := make([]models.Client, 0)
	for _, c := range s.clients {
		if strings.Contains(strings.ToLower(c.Name), t) ||
			strings.Contains(strings.ToLower(c.Email), t) {
			result = append(result, c)
		}
	}
	return result
}

// RecentMessages returns up to n messages ordered by sent time, newest
// first.
func (s *Store) RecentMessages(n int) []models.BirthdayMessage {
	sorted := slices.Clone(s.messages)
	slices.SortStableFunc(sorted, func(a, b models.BirthdayMessage) int {
		return b.SentDate.Compare(a.SentDate)
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
