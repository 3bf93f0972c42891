package invoice

import (
	"context"
	"time"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type InvoiceRepo interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	Update(ctx context.Context, inv *domain.Invoice) error
	Delete(ctx context.Context, id string) error

	List(ctx context.Context, page, pageSize int) ([]*domain.Invoice, int, error)
}

// Cache is the listing-view cache the mutations revalidate. Best-effort:
// a cache failure never fails the request.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
