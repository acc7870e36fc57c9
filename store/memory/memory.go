package memory

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/notmobil/backend/models"
	"github.com/notmobil/backend/store"
)

// MemoryNoteStore keeps notes for the lifetime of the process. Notes are
// held in a slice so ListNotes returns them in insertion order. A single
// RWMutex serializes structural mutations; readers never observe a
// partially inserted or removed note.
type MemoryNoteStore struct {
	mu    sync.RWMutex
	notes []models.Note
	users []models.User
}

func NewMemoryNoteStore(users []models.User) *MemoryNoteStore {
	return &MemoryNoteStore{
		users: users,
	}
}

// SeedUsers is the demo account set served by a fresh deployment.
func SeedUsers() []models.User {
	return []models.User{
		{
			Id:       "user1",
			Email:    "test@test.com",
			Password: "123456",
			Name:     "Test User",
		},
	}
}

func (s *MemoryNoteStore) ListNotes(ctx context.Context, userId string) ([]models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := []models.Note{}
	for _, n := range s.notes {
		if n.UserId == userId {
			notes = append(notes, n)
		}
	}
	return notes, nil
}

func (s *MemoryNoteStore) GetNote(ctx context.Context, userId string, noteId string) (models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notes {
		if n.Id == noteId && n.UserId == userId {
			return n, nil
		}
	}
	return models.Note{}, store.ErrNoteNotFound
}

func (s *MemoryNoteStore) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	// UUIDv7 ids are time-ordered, matching the insertion order of the slice
	id, err := uuid.NewV7()
	if err != nil {
		return models.Note{}, err
	}

	now := time.Now().UnixMilli()
	note.Id = id.String()
	note.CreatedAt = now
	note.UpdatedAt = now
	note.IsSynced = true
	if note.Tags == nil {
		note.Tags = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = append(s.notes, note)
	return note, nil
}

func (s *MemoryNoteStore) UpdateNote(ctx context.Context, userId string, noteId string, update models.NoteUpdate) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		n := &s.notes[i]
		if n.Id != noteId || n.UserId != userId {
			continue
		}

		if update.Title != nil {
			n.Title = *update.Title
		}
		if update.Content != nil {
			n.Content = *update.Content
		}
		if update.Tags != nil {
			n.Tags = *update.Tags
		}
		if update.Location != nil {
			n.Location = update.Location
		}
		if update.SensorData != nil {
			n.SensorData = update.SensorData
		}
		// updatedAt moves even when no visible field changed
		n.UpdatedAt = time.Now().UnixMilli()

		return *n, nil
	}
	return models.Note{}, store.ErrNoteNotFound
}

func (s *MemoryNoteStore) DeleteNote(ctx context.Context, userId string, noteId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notes {
		if n.Id == noteId && n.UserId == userId {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return nil
		}
	}
	return store.ErrNoteNotFound
}

func (s *MemoryNoteStore) GetUser(ctx context.Context, userId string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Id == userId {
			return u, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (s *MemoryNoteStore) GetUserByCredentials(ctx context.Context, email string, password string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}
