package news

import "context"

// Repository defines the interface for news persistence.
type Repository interface {
	Create(ctx context.Context, n *NewsItem) error
	List(ctx context.Context) ([]*NewsItem, error)
}
