package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
)

type fakeRepo struct {
	byID map[string]*domain.Invoice

	createErr error
	getErr    error
	updateErr error
	deleteErr error
	listErr   error

	listCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]*domain.Invoice{}}
}

func (r *fakeRepo) Create(_ context.Context, inv *domain.Invoice) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *inv
	r.byID[inv.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*domain.Invoice, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	inv, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrInvoiceNotFound()
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeRepo) Update(_ context.Context, inv *domain.Invoice) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[inv.ID]; !ok {
		return domain.ErrInvoiceNotFound()
	}
	cp := *inv
	r.byID[inv.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.byID[id]; !ok {
		return domain.ErrInvoiceNotFound()
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeRepo) List(_ context.Context, page, pageSize int) ([]*domain.Invoice, int, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	out := make([]*domain.Invoice, 0, len(r.byID))
	for _, inv := range r.byID {
		cp := *inv
		out = append(out, &cp)
	}
	return out, len(r.byID), nil
}

// fakeCache records every operation so tests can assert which keys a
// mutation invalidated.
type fakeCache struct {
	entries map[string]any

	deleted []string
	setKeys []string

	getErr    error
	setErr    error
	deleteErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]any{}}
}

func (c *fakeCache) Get(_ context.Context, key string, dest any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	val, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	switch d := dest.(type) {
	case *Page:
		*d = val.(Page)
	case *domain.Invoice:
		*d = val.(domain.Invoice)
	}
	return true, nil
}

func (c *fakeCache) Set(_ context.Context, key string, val any, _ time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.setKeys = append(c.setKeys, key)
	switch v := val.(type) {
	case Page:
		c.entries[key] = v
	case *domain.Invoice:
		c.entries[key] = *v
	default:
		c.entries[key] = v
	}
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	if c.deleteErr != nil {
		return c.deleteErr
	}
	c.deleted = append(c.deleted, keys...)
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func newSvcForTest(repo *fakeRepo, cache *fakeCache) *Service {
	var c Cache
	if cache != nil {
		c = cache
	}
	return New(repo, fixedClock{t: testNow}, c, 0, 0)
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected domain error %q, got nil", code)
	}
	if !domain.Is(err, code) {
		t.Fatalf("expected domain error %q, got %v", code, err)
	}
}

func mustCreate(t *testing.T, svc *Service, customerID, amount string) *domain.Invoice {
	t.Helper()
	inv, err := svc.Create(context.Background(), CreateCmd{
		CustomerID: customerID,
		Amount:     amount,
		Status:     "pending",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return inv
}
