package invoice

import (
	"context"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
)

type UpdateCmd struct {
	InvoiceID  string
	CustomerID string
	Amount     string
	Status     string
}

func (s *Service) Update(ctx context.Context, cmd UpdateCmd) (*domain.Invoice, error) {
	cents, err := parseAmountCents(cmd.Amount)
	if err != nil {
		return nil, err
	}

	inv, err := s.repo.GetByID(ctx, cmd.InvoiceID)
	if err != nil {
		return nil, err
	}

	if err := inv.ApplyUpdate(cmd.CustomerID, cents, domain.InvoiceStatus(cmd.Status), s.clock.Now()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, err
	}

	s.revalidate(ctx, cacheKeyList, cacheKeyDetails(inv.ID))
	return inv, nil
}
