package store

import (
	"context"
	"errors"

	"github.com/notmobil/backend/models"
)

type NoteStore interface {
	ListNotes(ctx context.Context, userId string) ([]models.Note, error)
	GetNote(ctx context.Context, userId string, noteId string) (models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, userId string, noteId string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, userId string, noteId string) error

	GetUser(ctx context.Context, userId string) (models.User, error)
	GetUserByCredentials(ctx context.Context, email string, password string) (models.User, error)
}

// Custom error types for clarity. A note owned by someone else is reported
// as not found so the store never leaks existence of other users' notes.
var (
	ErrNoteNotFound = errors.New("note does not exist")
	ErrUserNotFound = errors.New("user does not exist")
)
