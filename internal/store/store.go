// Package store implements the client and birthday-message collections of
// BirthdayBook: per-user loading, mutations with synchronous persistence,
// the automatic birthday trigger, and the derived queries consumed by the
// presentation layer.
//
// The store is single-threaded by design: every operation runs to completion
// before the next is invoked, the store is the sole writer of its state, and
// every mutation persists the full collection before the new state becomes
// visible to readers.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	evbus "github.com/asaskevich/EventBus"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/birthdaybook/internal/dbx"
	"github.com/dmitrijs2005/birthdaybook/internal/events"
	"github.com/dmitrijs2005/birthdaybook/internal/logging"
	"github.com/dmitrijs2005/birthdaybook/internal/models"
	"github.com/dmitrijs2005/birthdaybook/internal/repositories/kv"
)

const (
	clientsKeyPrefix  = "clients_"
	messagesKeyPrefix = "messages_"
)

func clientsKey(userID string) string  { return clientsKeyPrefix + userID }
func messagesKey(userID string) string { return messagesKeyPrefix + userID }

// Store owns the client and message collections of the active user.
//
// All mutating operations are silent no-ops while no user is active.
// Unknown identifiers passed to update/delete/flag operations are silently
// ignored as well; both are deliberate fail-silent policies, not errors.
type Store struct {
	db   *sql.DB
	repo kv.Repository
	bus  evbus.Bus
	log  logging.Logger
	now  func() time.Time

	userID   string
	clients  []models.Client
	messages []models.BirthdayMessage
}

// New constructs a Store over the given repository. db may be nil when repo
// is not SQLite-backed (e.g. the in-memory repository in tests); it is only
// used to group the two collection writes of a cascade delete in one
// transaction. If bus is non-nil the store subscribes to session changes and
// publishes a store-changed event after every successful mutation.
func New(db *sql.DB, repo kv.Repository, bus evbus.Bus, log logging.Logger) *Store {
	s := &Store{db: db, repo: repo, bus: bus, log: log, now: time.Now}
	if bus != nil {
		_ = bus.Subscribe(events.TopicSessionChanged, s.onSessionChanged)
	}
	return s
}

// onSessionChanged reloads the store for the new user. Errors cannot be
// returned to the publisher, so they are logged and the store is left with
// no active user rather than with half-loaded state.
func (s *Store) onSessionChanged(userID string) {
	ctx := context.Background()
	if err := s.SetActiveUser(ctx, userID); err != nil {
		s.log.Error(ctx, "failed to reload collections", "user", userID, "error", err)
	}
}

// ActiveUser returns the identifier of the currently active user, or an
// empty string when nobody is logged in.
func (s *Store) ActiveUser() string {
	return s.userID
}

// SetActiveUser discards the in-memory collections (never the persisted
// ones), loads the given user's collections from storage and runs the
// automatic birthday trigger over them. An empty userID clears the store.
func (s *Store) SetActiveUser(ctx context.Context, userID string) error {
	s.userID = ""
	s.clients = nil
	s.messages = nil

	if userID == "" {
		s.publishChanged()
		return nil
	}

	clients, err := loadCollection[models.Client](ctx, s.repo, clientsKey(userID))
	if err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}
	messages, err := loadCollection[models.BirthdayMessage](ctx, s.repo, messagesKey(userID))
	if err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}

	s.userID = userID
	s.clients = clients
	s.messages = messages

	s.log.Info(ctx, "collections loaded",
		"user", userID, "clients", len(clients), "messages", len(messages))

	if err := s.runBirthdayTrigger(ctx); err != nil {
		return fmt.Errorf("birthday trigger failed: %w", err)
	}

	s.publishChanged()
	return nil
}

// AddClient generates an identifier, stamps the owning user and appends the
// client. The store performs no validation; that is the caller's job.
// Returns nil when no user is active.
func (s *Store) AddClient(ctx context.Context, data models.ClientData) (*models.Client, error) {
	if s.userID == "" {
		return nil, nil
	}

	c := models.Client{
		Id:        uuid.NewString(),
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Birthdate: data.Birthdate,
		UserId:    s.userID,
	}

	updated := append(slices.Clone(s.clients), c)
	if err := s.saveClients(ctx, updated); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateClient replaces the editable fields of the client matching id.
// Unknown ids are silently ignored.
func (s *Store) UpdateClient(ctx context.Context, id string, data models.ClientData) error {
	if s.userID == "" {
		return nil
	}

	idx := slices.IndexFunc(s.clients, func(c models.Client) bool { return c.Id == id })
	if idx < 0 {
		return nil
	}

	updated := slices.Clone(s.clients)
	updated[idx].Name = data.Name
	updated[idx].Email = data.Email
	updated[idx].Phone = data.Phone
	updated[idx].Birthdate = data.Birthdate

	return s.saveClients(ctx, updated)
}

// DeleteClient removes the client matching id and cascades to every message
// referencing it. Both collections are persisted together: in one SQLite
// transaction when the store is database-backed, sequentially otherwise.
// Unknown ids are silently ignored.
func (s *Store) DeleteClient(ctx context.Context, id string) error {
	if s.userID == "" {
		return nil
	}

	if !slices.ContainsFunc(s.clients, func(c models.Client) bool { return c.Id == id }) {
		return nil
	}

	updatedClients := slices.DeleteFunc(slices.Clone(s.clients),
		func(c models.Client) bool { return c.Id == id })
	updatedMessages := slices.DeleteFunc(slices.Clone(s.messages),
		func(m models.BirthdayMessage) bool { return m.ClientId == id })

	cb, err := json.Marshal(updatedClients)
	if err != nil {
		return fmt.Errorf("failed to marshal clients: %w", err)
	}
	mb, err := json.Marshal(updatedMessages)
	if err != nil {
		return fmt.Errorf("failed to marshal messages: %w", err)
	}

	write := func(ctx context.Context, repo kv.Repository) error {
		if err := repo.Set(ctx, clientsKey(s.userID), cb); err != nil {
			return err
		}
		return repo.Set(ctx, messagesKey(s.userID), mb)
	}

	if s.db != nil {
		err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			return write(ctx, kv.NewSQLiteRepository(tx))
		})
	} else {
		err = write(ctx, s.repo)
	}
	if err != nil {
		return fmt.Errorf("failed to persist cascade delete: %w", err)
	}

	s.clients = updatedClients
	s.messages = updatedMessages
	s.publishChanged()
	return nil
}

// SendBirthdayMessage appends a message record for clientID with the current
// timestamp and both flags false. The client's existence is deliberately not
// verified: callers may log a message for a client created in the same
// synchronous turn. Returns nil when no user is active.
func (s *Store) SendBirthdayMessage(ctx context.Context, clientID string) (*models.BirthdayMessage, error) {
	if s.userID == "" {
		return nil, nil
	}

	m := models.BirthdayMessage{
		Id:       uuid.NewString(),
		ClientId: clientID,
		SentDate: s.now(),
		Viewed:   false,
		Clicked:  false,
		UserId:   s.userID,
	}

	updated := append(slices.Clone(s.messages), m)
	if err := s.saveMessages(ctx, updated); err != nil {
		return nil, err
	}
	return &m, nil
}

// MarkAsViewed sets the viewed flag of the message matching messageID.
// The flag is monotonic: it is never cleared. Unknown ids are ignored.
func (s *Store) MarkAsViewed(ctx context.Context, messageID string) error {
	return s.setFlag(ctx, messageID, func(m *models.BirthdayMessage) { m.Viewed = true })
}

// MarkAsClicked sets the clicked flag of the message matching messageID.
// Monotonic, same rule as MarkAsViewed.
func (s *Store) MarkAsClicked(ctx context.Context, messageID string) error {
	return s.setFlag(ctx, messageID, func(m *models.BirthdayMessage) { m.Clicked = true })
}

func (s *Store) setFlag(ctx context.Context, messageID string, set func(*models.BirthdayMessage)) error {
	if s.userID == "" {
		return nil
	}

	idx := slices.IndexFunc(s.messages, func(m models.BirthdayMessage) bool { return m.Id == messageID })
	if idx < 0 {
		return nil
	}

	updated := slices.Clone(s.messages)
	set(&updated[idx])

	return s.saveMessages(ctx, updated)
}

// saveClients persists the updated collection and only then makes it the
// in-memory state, so a read issued right after any mutation observes the
// persisted value (read-your-writes).
func (s *Store) saveClients(ctx context.Context, updated []models.Client) error {
	b, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("failed to marshal clients: %w", err)
	}
	if err := s.repo.Set(ctx, clientsKey(s.userID), b); err != nil {
		return fmt.Errorf("failed to persist clients: %w", err)
	}
	s.clients = updated
	s.publishChanged()
	return nil
}

func (s *Store) saveMessages(ctx context.Context, updated []models.BirthdayMessage) error {
	b, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("failed to marshal messages: %w", err)
	}
	if err := s.repo.Set(ctx, messagesKey(s.userID), b); err != nil {
		return fmt.Errorf("failed to persist messages: %w", err)
	}
	s.messages = updated
	s.publishChanged()
	return nil
}

func (s *Store) publishChanged() {
	if s.bus != nil {
		s.bus.Publish(events.TopicStoreChanged)
	}
}

func loadCollection[T any](ctx context.Context, repo kv.Repository, key string) ([]T, error) {
	b, err := repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("malformed collection %s: %w", key, err)
	}
	return out, nil
}
