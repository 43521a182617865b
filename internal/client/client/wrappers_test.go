package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peersphere/peersphere/internal/client/client"
	"github.com/peersphere/peersphere/internal/client/client/apitest"
)

func setup(t *testing.T) (*client.RESTClient, *apitest.Backend) {
	t.Helper()
	b := apitest.New()
	srv := b.Server(t)
	return client.NewRESTClient(srv.URL + "/api"), b
}

func last(b *apitest.Backend) apitest.Recorded {
	reqs := b.Requests()
	return reqs[len(reqs)-1]
}

func TestAuthWrappers(t *testing.T) {
	ctx := context.Background()
	c, b := setup(t)

	health, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "OK", health)

	u, err := c.Register(ctx, "Ana", "Ana@Example.com", "secret1")
	require.NoError(t, err)
	assert.NotZero(t, u.UserID)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.Empty(t, u.Name)

	rec := last(b)
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/api/auth/register", rec.Path)
	assert.JSONEq(t, `{"name":"Ana","email":"Ana@Example.com","password":"secret1"}`, rec.Body)

	_, err = c.Register(ctx, "Ana", "ana@example.com", "x")
	require.Error(t, err)
	assert.True(t, client.IsAPIError(err, http.StatusConflict))
	assert.EqualError(t, err, "Email already registered")

	u, err = c.Login(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Name)

	_, err = c.Login(ctx, "ana@example.com", "wrong")
	assert.EqualError(t, err, "Invalid credentials")
	assert.True(t, client.IsAPIError(err, http.StatusUnauthorized))
}

func TestGroupWrappers(t *testing.T) {
	ctx := context.Background()
	c, b := setup(t)
	owner := b.AddUser("Ana", "ana@x.com", "pw")
	member := b.AddUser("Ben", "ben@x.com", "pw")

	g, err := c.CreateGroup(ctx, "Algorithms", "CS201", owner)
	require.NoError(t, err)
	assert.Equal(t, "Algorithms", g.Name)
	assert.NotEmpty(t, g.GroupCode)
	assert.JSONEq(t, `{"name":"Algorithms","courseCode":"CS201","creatorUserId":1}`, last(b).Body)

	require.NoError(t, c.JoinGroup(ctx, member, g.GroupCode))
	rec := last(b)
	assert.Equal(t, "/api/groups/join", rec.Path)
	assert.Equal(t, "userId=2", rec.Query)

	groups, err := c.GetUserGroups(ctx, member)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, g.GroupID, groups[0].GroupID)

	got, err := c.GetGroup(ctx, g.GroupID)
	require.NoError(t, err)
	assert.Equal(t, "CS201", got.CourseCode)

	err = c.JoinGroup(ctx, member, "NOPE")
	assert.True(t, client.IsAPIError(err, http.StatusNotFound))
}

func TestDeckAndFlashcardWrappers(t *testing.T) {
	ctx := context.Background()
	c, b := setup(t)

	d, err := c.CreateDeck(ctx, 7, "Biology", "cells", 3)
	require.NoError(t, err)
	assert.JSONEq(t, `{"groupId":7,"title":"Biology","description":"cells","createdBy":3}`, last(b).Body)

	card, err := c.CreateFlashcard(ctx, d.DeckID, "Q?", "A.", 3)
	require.NoError(t, err)
	assert.Equal(t, "/api/flashcards", last(b).Path)

	decks, err := c.GetDecksByGroup(ctx, 7)
	require.NoError(t, err)
	require.Len(t, decks, 1)
	assert.Equal(t, 1, decks[0].CardCount)
	assert.Equal(t, "/api/decks/group/7", last(b).Path)

	require.NoError(t, c.UpdateDeck(ctx, d.DeckID, "Bio", "updated"))
	rec := last(b)
	assert.Equal(t, http.MethodPut, rec.Method)
	assert.JSONEq(t, `{"title":"Bio","description":"updated"}`, rec.Body)

	d2, err := c.GetDeck(ctx, d.DeckID)
	require.NoError(t, err)
	assert.Equal(t, "Bio", d2.DisplayTitle())

	require.NoError(t, c.UpdateFlashcard(ctx, card.CardID, "Q2?", "A2."))
	cards, err := c.GetFlashcardsByDeck(ctx, d.DeckID)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Q2?", cards[0].Question)

	fc, err := c.GetFlashcard(ctx, card.CardID)
	require.NoError(t, err)
	assert.Equal(t, "A2.", fc.Answer)

	require.NoError(t, c.DeleteFlashcard(ctx, card.CardID))
	require.NoError(t, c.DeleteDeck(ctx, d.DeckID))
	assert.Equal(t, http.MethodDelete, last(b).Method)
	assert.Zero(t, b.Count("decks"))

	err = c.DeleteDeck(ctx, d.DeckID)
	assert.True(t, client.IsAPIError(err, http.StatusNotFound))
}

func TestNoteAndMessageWrappers(t *testing.T) {
	ctx := context.Background()
	c, b := setup(t)

	n, err := c.CreateNote(ctx, 4, 9, "Week 1", "Intro")
	require.NoError(t, err)
	assert.JSONEq(t, `{"groupId":4,"authorId":9,"title":"Week 1","content":"Intro"}`, last(b).Body)

	require.NoError(t, c.UpdateNote(ctx, n.NoteID, "Week 1", "Intro, revised"))
	got, err := c.GetNote(ctx, n.NoteID)
	require.NoError(t, err)
	assert.Equal(t, "Intro, revised", got.Content)

	notes, err := c.GetNotesByGroup(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	require.NoError(t, c.DeleteNote(ctx, n.NoteID))

	for _, text := range []string{"one", "two", "three"} {
		_, err := c.SendMessage(ctx, 4, 9, text)
		require.NoError(t, err)
	}

	msgs, err := c.GetMessages(ctx, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, "limit=2", last(b).Query)
	require.Len(t, msgs, 2)
	assert.Equal(t, "three", msgs[1].Content)

	_, err = c.GetMessages(ctx, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, "limit=50", last(b).Query)
}

func TestEventWrappers(t *testing.T) {
	ctx := context.Background()
	c, b := setup(t)

	e, err := c.CreateEvent(ctx, 2, "Exam prep", "", "2026-05-01T10:00:00", "2026-05-01T12:00:00", 5)
	require.NoError(t, err)
	assert.Equal(t, "/api/calendar", last(b).Path)
	assert.Equal(t, "2026-05-01T10:00:00", e.StartTime)

	require.NoError(t, c.UpdateEvent(ctx, e.EventID, "Exam prep", "room 4", e.StartTime, "2026-05-01T13:00:00"))

	events, err := c.GetEventsByGroup(ctx, 2)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "room 4", events[0].Description)
	assert.Equal(t, "/api/calendar/group/2", last(b).Path)

	got, err := c.GetEvent(ctx, e.EventID)
	require.NoError(t, err)
	assert.Equal(t, "2026-05-01T13:00:00", got.EndTime)

	require.NoError(t, c.DeleteEvent(ctx, e.EventID))
	_, err = c.GetEvent(ctx, e.EventID)
	assert.True(t, client.IsAPIError(err, http.StatusNotFound))
}
