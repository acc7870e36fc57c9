package service

import (
	"context"
	"encoding/json"

	"github.com/notmobil/backend/models"
)

// NoteFields carries the client-supplied values for a new note. Everything
// else (id, timestamps, owner) is assigned server-side.
type NoteFields struct {
	Title      string
	Content    string
	Tags       []string
	Location   json.RawMessage
	SensorData json.RawMessage
}

func (s *Service) ListNotes(ctx context.Context, user models.User) ([]models.Note, error) {
	return s.Store.ListNotes(ctx, user.Id)
}

func (s *Service) GetNote(ctx context.Context, user models.User, noteId string) (models.Note, error) {
	return s.Store.GetNote(ctx, user.Id, noteId)
}

func (s *Service) CreateNote(ctx context.Context, user models.User, fields NoteFields) (models.Note, error) {
	note := models.Note{
		Title:      fields.Title,
		Content:    fields.Content,
		Tags:       fields.Tags,
		Location:   fields.Location,
		SensorData: fields.SensorData,
		UserId:     user.Id,
	}

	return s.Store.CreateNote(ctx, note)
}

func (s *Service) UpdateNote(ctx context.Context, user models.User, noteId string, update models.NoteUpdate) (models.Note, error) {
	return s.Store.UpdateNote(ctx, user.Id, noteId, update)
}

func (s *Service) DeleteNote(ctx context.Context, user models.User, noteId string) error {
	return s.Store.DeleteNote(ctx, user.Id, noteId)
}
