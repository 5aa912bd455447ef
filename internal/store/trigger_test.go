package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/birthdaybook/internal/models"
	"github.com/dmitrijs2005/birthdaybook/internal/repositories/kv"
)

func seedClients(t *testing.T, repo kv.Repository, userID string, clients []models.Client) {
	t.Helper()
	b, err := json.Marshal(clients)
	require.NoError(t, err)
	require.NoError(t, repo.Set(context.Background(), "clients_"+userID, b))
}

func seedMessages(t *testing.T, repo kv.Repository, userID string, msgs []models.BirthdayMessage) {
	t.Helper()
	b, err := json.Marshal(msgs)
	require.NoError(t, err)
	require.NoError(t, repo.Set(context.Background(), "messages_"+userID, b))
}

func TestTrigger_SendsOnBirthday_OncePerDay(t *testing.T) {
	repo := kv.NewMemoryRepository()
	ctx := context.Background()

	seedClients(t, repo, "u1", []models.Client{{
		Id: "c1", Name: "Ana Silva", Email: "ana@example.com",
		Birthdate: models.NewDate(1990, time.March, 15), UserId: "u1",
	}})

	s := newTestStore(t, repo)
	require.NoError(t, s.SetActiveUser(ctx, "u1"))

	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "c1", msgs[0].ClientId)
	assert.False(t, msgs[0].Viewed)
	assert.False(t, msgs[0].Clicked)
	assert.Equal(t, "u1", msgs[0].UserId)

	// Loading the session again the same day must not send a second message.
	s2 := newTestStore(t, repo)
	require.NoError(t, s2.SetActiveUser(ctx, "u1"))
	require.Len(t, s2.Messages(), 1)
}

func TestTrigger_YearOfBirthdateIgnored(t *testing.T) {
	repo := kv.NewMemoryRepository()
	ctx := context.Background()

	seedClients(t, repo, "u1", []models.Client{{
		Id: "c1", Name: "A", Birthdate: models.NewDate(2003, time.March, 15), UserId: "u1",
	}})

	s := newTestStore(t, repo)
	require.NoError(t, s.SetActiveUser(ctx, "u1"))
	require.Len(t, s.Messages(), 1)
}

func TestTrigger_NoBirthdayToday_NoMessage(t *testing.T) {
	repo := kv.NewMemoryRepository()
	ctx := context.Background()

	seedClients(t, repo, "u1", []models.Client{
		{Id: "c1", Name: "A", Birthdate: models.NewDate(1990, time.March, 16), UserId: "u1"},
		{Id: "c2", Name: "B", Birthdate: models.NewDate(1990, time.April, 15), UserId: "u1"},
	})

	s := newTestStore(t, repo)
	require.NoError(t, s.SetActiveUser(ctx, "u1"))
	require.Empty(t, s.Messages())
}

func TestTrigger_DistinctClientsSameDay_AreIndependent(t *testing.T) {
	repo := kv.NewMemoryRepository()
	ctx := context.Background()

	seedClients(t, repo, "u1", []models.Client{
		{Id: "c1", Name: "A", Birthdate: models.NewDate(1990, time.March, 15), UserId: "u1"},
		{Id: "c2", Name: "B", Birthdate: models.NewDate(1985, time.March, 15), UserId: "u1"},
	})

	s := newTestStore(t, repo)
	require.NoError(t, s.SetActiveUser(ctx, "u1"))

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	ids := []string{msgs[0].ClientId, msgs[1].ClientId}
	assert.ElementsMatch(t, []string{"c1", "c2"}, ids)
}

func TestTrigger_SuppressedByExistingMessageToday(t *testing.T) {
	repo := kv.NewMemoryRepository()
	ctx := context.Background()

	seedClients(t, repo, "u1", []models.Client{{
		Id: "c1", Name: "A", Birthdate: models.NewDate(1990, time.March, 15), UserId: "u1",
	}})
	seedMessages(t, repo, "u1", []models.BirthdayMessage{{
		Id: "m1", ClientId: "c1",
		SentDate: time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC), UserId: "u1",
	}})

	s := newTestStore(t, repo)
	require.NoError(t, s.SetActiveUser(ctx, "u1"))
	require.Len(t, s.Messages(), 1)
	require.Equal(t, "m1", s.Messages()[0].Id)
}

func TestTrigger_MessageFromEarlierDayDoesNotSuppress(t *testing.T) {
	repo := kv.NewMemoryRepository()
	ctx := context.Background()

	seedClients(t, repo, "u1", []models.Client{{
		Id: "c1", Name: "A", Birthdate: models.NewDate(1990, time.March, 15), UserId: "u1",
	}})
	seedMessages(t, repo, "u1", []models.BirthdayMessage{{
		Id: "m1", ClientId: "c1",
		SentDate: time.Date(2023, 3, 15, 8, 0, 0, 0, time.UTC), UserId: "u1",
	}})

	s := newTestStore(t, repo)
	require.NoError(t, s.SetActiveUser(ctx, "u1"))
	require.Len(t, s.Messages(), 2)
}
