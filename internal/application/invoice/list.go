package invoice

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
)

type Page struct {
	Items    []*domain.Invoice
	Page     int
	PageSize int
	Total    int
}

func (s *Service) List(ctx context.Context, page, pageSize int) (Page, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	// Only the default first page is cached; it is the listing view the
	// mutations revalidate.
	cacheable := s.cache != nil && page == 1 && pageSize == 20

	if cacheable {
		var cached Page
		hit, err := s.cache.Get(ctx, cacheKeyList, &cached)
		if err != nil {
			zlog.Warn().Err(err).Msg("cache read failed")
		} else if hit {
			return cached, nil
		}
	}

	items, total, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		return Page{}, err
	}

	out := Page{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}

	if cacheable {
		if err := s.cache.Set(ctx, cacheKeyList, out, s.ttlList); err != nil {
			zlog.Warn().Err(err).Msg("cache write failed")
		}
	}

	return out, nil
}
