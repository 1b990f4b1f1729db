package reports

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service handles report business logic
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService creates a new reports service
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// CreateReportRequest represents a report creation request.
// Lat/Lng are pointers so the boundary can tell "missing" from 0,
// which is a legal coordinate.
type CreateReportRequest struct {
	UsuarioID string   `json:"usuarioId" validate:"required"`
	Lat       *float64 `json:"lat" validate:"required"`
	Lng       *float64 `json:"lng" validate:"required"`
	Imagen    string   `json:"imagen,omitempty"`
}

// ReportResponse represents a single report response
type ReportResponse struct {
	Report *Report `json:"data"`
}

// ListReportsResponse represents a list of reports response
type ListReportsResponse struct {
	Reports []*Report `json:"data"`
}

// Create persists a new report with a server-assigned timestamp.
// Reports are immutable once stored.
func (s *Service) Create(ctx context.Context, req CreateReportRequest) (*ReportResponse, error) {
	if req.UsuarioID == "" || req.Lat == nil || req.Lng == nil {
		return nil, ErrMissingFields
	}

	report := &Report{
		ID:        bson.NewObjectID(),
		UsuarioID: req.UsuarioID,
		Fecha:     time.Now(),
		Ubicacion: Ubicacion{Lat: *req.Lat, Lng: *req.Lng},
		Imagen:    req.Imagen,
	}

	if err := s.repo.Create(ctx, report); err != nil {
		s.log.Error("failed to create report", "usuarioId", req.UsuarioID, "error", err)
		return nil, ErrCreateReport
	}

	return &ReportResponse{Report: report}, nil
}

// List returns all reports for the given usuarioId, newest first.
func (s *Service) List(ctx context.Context, usuarioID string) (*ListReportsResponse, error) {
	if usuarioID == "" {
		return nil, ErrMissingUsuarioID
	}

	reports, err := s.repo.ListByUsuario(ctx, usuarioID)
	if err != nil {
		s.log.Error("failed to list reports", "usuarioId", usuarioID, "error", err)
		return nil, ErrListReports
	}
	if reports == nil {
		reports = []*Report{}
	}

	return &ListReportsResponse{Reports: reports}, nil
}
