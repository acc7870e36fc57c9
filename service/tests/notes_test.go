package service_test

import (
	"context"
	"testing"

	"github.com/notmobil/backend/models"
	"github.com/notmobil/backend/service"
	"github.com/notmobil/backend/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testUser = models.User{Id: "user1", Email: "test@test.com", Name: "Test User"}

func TestCreateNote_OwnerComesFromCaller(t *testing.T) {
	svc, mockStore, _, _ := setupService(t)
	ctx := context.Background()

	mockStore.On("CreateNote", ctx, mock.MatchedBy(func(n models.Note) bool {
		// The store receives the authenticated owner, never a client value
		return n.UserId == "user1" && n.Title == "title" && n.Content == "content"
	})).Return(models.Note{Id: "n1", Title: "title", UserId: "user1"}, nil)

	note, err := svc.CreateNote(ctx, testUser, service.NoteFields{Title: "title", Content: "content"})
	require.NoError(t, err)
	assert.Equal(t, "n1", note.Id)
	mockStore.AssertExpectations(t)
}

func TestListNotes_ScopedToCaller(t *testing.T) {
	svc, mockStore, _, _ := setupService(t)
	ctx := context.Background()

	notes := []models.Note{{Id: "n1", UserId: "user1"}}
	mockStore.On("ListNotes", ctx, "user1").Return(notes, nil)

	got, err := svc.ListNotes(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, notes, got)
}

func TestGetNote_NotFoundPassesThrough(t *testing.T) {
	svc, mockStore, _, _ := setupService(t)
	ctx := context.Background()

	mockStore.On("GetNote", ctx, "user1", "missing").Return(models.Note{}, store.ErrNoteNotFound)

	_, err := svc.GetNote(ctx, testUser, "missing")
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestUpdateNote_ForwardsUpdate(t *testing.T) {
	svc, mockStore, _, _ := setupService(t)
	ctx := context.Background()

	newTitle := "updated"
	update := models.NoteUpdate{Title: &newTitle}
	mockStore.On("UpdateNote", ctx, "user1", "n1", update).Return(models.Note{Id: "n1", Title: "updated"}, nil)

	note, err := svc.UpdateNote(ctx, testUser, "n1", update)
	require.NoError(t, err)
	assert.Equal(t, "updated", note.Title)
}

func TestDeleteNote_ScopedToCaller(t *testing.T) {
	svc, mockStore, _, _ := setupService(t)
	ctx := context.Background()

	mockStore.On("DeleteNote", ctx, "user1", "n1").Return(nil)

	assert.NoError(t, svc.DeleteNote(ctx, testUser, "n1"))
	mockStore.AssertExpectations(t)
}
