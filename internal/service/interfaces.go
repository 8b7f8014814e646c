package service

import (
	"context"

	"github.com/MKhiriev/go-route-handler/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService manages the notes of one user at a time. userID always comes
// from the authenticated session.
type NoteService interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)
	GetNote(ctx context.Context, userID, noteID int64) (models.Note, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
