package invoice

import (
	"context"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
)

type CreateCmd struct {
	CustomerID string
	Amount     string // decimal string, e.g. "12.50"
	Status     string
}

func (s *Service) Create(ctx context.Context, cmd CreateCmd) (*domain.Invoice, error) {
	cents, err := parseAmountCents(cmd.Amount)
	if err != nil {
		return nil, err
	}

	inv, err := domain.NewInvoice(cmd.CustomerID, cents, domain.InvoiceStatus(cmd.Status), s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}

	s.revalidate(ctx, cacheKeyList)
	return inv, nil
}
