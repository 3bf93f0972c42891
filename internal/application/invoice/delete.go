package invoice

import (
	"context"
	"strings"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
)

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrMissingField("id")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.revalidate(ctx, cacheKeyList, cacheKeyDetails(id))
	return nil
}
