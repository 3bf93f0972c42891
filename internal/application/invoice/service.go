package invoice

import (
	"context"
	"time"

	zlog "github.com/rs/zerolog/log"
)

type Service struct {
	repo  InvoiceRepo
	cache Cache
	clock Clock

	ttlDetails time.Duration
	ttlList    time.Duration
}

func New(repo InvoiceRepo, clock Clock, cache Cache, ttlDetails, ttlList time.Duration) *Service {
	if ttlDetails == 0 {
		ttlDetails = 5 * time.Minute
	}
	if ttlList == 0 {
		ttlList = 15 * time.Second
	}

	return &Service{
		repo:       repo,
		cache:      cache,
		clock:      clock,
		ttlDetails: ttlDetails,
		ttlList:    ttlList,
	}
}

// revalidate drops the cached listing view (and any detail keys) after a
// successful mutation.
func (s *Service) revalidate(ctx context.Context, keys ...string) {
	if s.cache == nil || len(keys) == 0 {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		zlog.Warn().Err(err).Strs("keys", keys).Msg("cache invalidate failed")
	}
}
