package store

import (
	"context"
	"time"

	"github.com/dmitrijs2005/birthdaybook/internal/models"
)

// runBirthdayTrigger scans the freshly loaded clients and logs a greeting
// for every client whose birthdate matches today's month and day, unless a
// message for that client dated today was already loaded.
//
// The duplicate check runs against the message collection as it was at the
// moment of the scan, so sends for distinct clients within the same pass are
// independent and cannot suppress each other. Single pass, no retry: a
// storage failure aborts the load.
func (s *Store) runBirthdayTrigger(ctx context.Context) error {
	today := s.now()
	loaded := s.messages

	for _, c := range s.clients {
		if c.Birthdate.Month() != today.Month() || c.Birthdate.Day() != today.Day() {
			continue
		}
		if hasMessageOn(loaded, c.Id, today) {
			continue
		}
		if _, err := s.SendBirthdayMessage(ctx, c.Id); err != nil {
			return err
		}
		s.log.Info(ctx, "birthday greeting sent", "client", c.Id, "name", c.Name)
	}
	return nil
}

func hasMessageOn(msgs []models.BirthdayMessage, clientID string, day time.Time) bool {
	for _, m := range msgs {
		if m.ClientId == clientID && sameCalendarDay(m.SentDate, day) {
			return true
		}
	}
	return false
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
