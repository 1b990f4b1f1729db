package news

import (
	"context"
	"log/slog"
	"time"

	"alerta-vecinal/internal/utils/sanitize"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service handles news business logic
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService creates a new news service
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// CreateNewsRequest represents a news creation request
type CreateNewsRequest struct {
	Titulo    string `json:"titulo" validate:"required"`
	Resumen   string `json:"resumen"`
	Contenido string `json:"contenido" validate:"required"`
	Imagen    string `json:"imagen"`
}

// NewsResponse represents a single news item response
type NewsResponse struct {
	Item *NewsItem `json:"data"`
}

// ListNewsResponse represents a list of news items response
type ListNewsResponse struct {
	Items []*NewsItem `json:"data"`
}

// Create persists a new news item with a server-assigned timestamp.
// Free-text fields are sanitized before storage.
func (s *Service) Create(ctx context.Context, req CreateNewsRequest) (*NewsResponse, error) {
	titulo := sanitize.Clean(req.Titulo)
	contenido := sanitize.Clean(req.Contenido)
	if titulo == "" || contenido == "" {
		return nil, ErrMissingFields
	}

	item := &NewsItem{
		ID:        bson.NewObjectID(),
		Titulo:    titulo,
		Resumen:   sanitize.Clean(req.Resumen),
		Contenido: contenido,
		Imagen:    req.Imagen,
		Fecha:     time.Now(),
	}

	if err := s.repo.Create(ctx, item); err != nil {
		s.log.Error("failed to create news item", "titulo", titulo, "error", err)
		return nil, ErrCreateNews
	}

	return &NewsResponse{Item: item}, nil
}

// List returns every news item, newest first. There is no per-user scoping
// and no pagination; the feed is global.
func (s *Service) List(ctx context.Context) (*ListNewsResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list news", "error", err)
		return nil, ErrListNews
	}
	if items == nil {
		items = []*NewsItem{}
	}

	return &ListNewsResponse{Items: items}, nil
}
