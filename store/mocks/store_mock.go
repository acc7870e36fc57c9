package mocks

import (
	"context"

	"github.com/notmobil/backend/models"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListNotes(ctx context.Context, userId string) ([]models.Note, error) {
	args := m.Called(ctx, userId)
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockStore) GetNote(ctx context.Context, userId string, noteId string) (models.Note, error) {
	args := m.Called(ctx, userId, noteId)
	return args.Get(0).(models.Note), args.Error(1)
}

func (m *MockStore) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	args := m.Called(ctx, note)
	return args.Get(0).(models.Note), args.Error(1)
}

func (m *MockStore) UpdateNote(ctx context.Context, userId string, noteId string, update models.NoteUpdate) (models.Note, error) {
	args := m.Called(ctx, userId, noteId, update)
	return args.Get(0).(models.Note), args.Error(1)
}

func (m *MockStore) DeleteNote(ctx context.Context, userId string, noteId string) error {
	args := m.Called(ctx, userId, noteId)
	return args.Error(0)
}

func (m *MockStore) GetUser(ctx context.Context, userId string) (models.User, error) {
	args := m.Called(ctx, userId)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockStore) GetUserByCredentials(ctx context.Context, email string, password string) (models.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(models.User), args.Error(1)
}
