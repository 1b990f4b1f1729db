package reports

import "context"

// Repository defines the interface for report persistence.
type Repository interface {
	Create(ctx context.Context, r *Report) error
	ListByUsuario(ctx context.Context, usuarioID string) ([]*Report, error)
}
