package invoice

import (
	"context"
	"strings"

	zlog "github.com/rs/zerolog/log"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
)

func (s *Service) Get(ctx context.Context, id string) (*domain.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrMissingField("id")
	}

	if s.cache != nil {
		var cached domain.Invoice
		hit, err := s.cache.Get(ctx, cacheKeyDetails(id), &cached)
		if err != nil {
			zlog.Warn().Err(err).Str("invoice_id", id).Msg("cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKeyDetails(id), inv, s.ttlDetails); err != nil {
			zlog.Warn().Err(err).Str("invoice_id", id).Msg("cache write failed")
		}
	}

	return inv, nil
}
