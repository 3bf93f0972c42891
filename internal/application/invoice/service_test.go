package invoice

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
)

func TestCreate_StoresCentsAndInvalidatesList(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	cache := newFakeCache()
	svc := newSvcForTest(repo, cache)

	inv, err := svc.Create(context.Background(), CreateCmd{
		CustomerID: "cus_1",
		Amount:     "12.50",
		Status:     "pending",
	})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if inv.AmountCents != 1250 {
		t.Fatalf("expected 1250 cents, got %d", inv.AmountCents)
	}
	if inv.Status != domain.StatusPending {
		t.Fatalf("expected pending, got %q", inv.Status)
	}

	stored, ok := repo.byID[inv.ID]
	if !ok {
		t.Fatal("invoice not persisted")
	}
	if stored.AmountCents != 1250 {
		t.Fatalf("persisted %d cents, expected 1250", stored.AmountCents)
	}
	if !slices.Contains(cache.deleted, cacheKeyList) {
		t.Fatalf("expected %q invalidated, deleted=%v", cacheKeyList, cache.deleted)
	}
}

func TestCreate_InvalidAmountSkipsRepo(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newSvcForTest(repo, nil)

	for _, amount := range []string{"", "abc", "0", "-1", "1.005"} {
		_, err := svc.Create(context.Background(), CreateCmd{
			CustomerID: "cus_1",
			Amount:     amount,
			Status:     "pending",
		})
		requireDomainCode(t, err, "invalid_field")
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected no inserts, got %d", len(repo.byID))
	}
}

func TestCreate_RejectsBadStatus(t *testing.T) {
	t.Parallel()

	svc := newSvcForTest(newFakeRepo(), nil)

	_, err := svc.Create(context.Background(), CreateCmd{
		CustomerID: "cus_1",
		Amount:     "10",
		Status:     "overdue",
	})
	requireDomainCode(t, err, "invalid_field")
}

func TestCreate_RepoErrorPassesThrough(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.createErr = domain.ErrDBUnavailable(context.DeadlineExceeded)
	cache := newFakeCache()
	svc := newSvcForTest(repo, cache)

	_, err := svc.Create(context.Background(), CreateCmd{
		CustomerID: "cus_1",
		Amount:     "10",
		Status:     "paid",
	})
	requireDomainCode(t, err, "db_unavailable")
	if len(cache.deleted) != 0 {
		t.Fatalf("failed create must not invalidate, deleted=%v", cache.deleted)
	}
}

func TestCreate_CacheFailureDoesNotFailRequest(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	cache := newFakeCache()
	cache.deleteErr = context.DeadlineExceeded
	svc := newSvcForTest(repo, cache)

	if _, err := svc.Create(context.Background(), CreateCmd{
		CustomerID: "cus_1",
		Amount:     "10",
		Status:     "paid",
	}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestUpdate_MutatesAndInvalidatesBothKeys(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	cache := newFakeCache()
	svc := newSvcForTest(repo, cache)
	inv := mustCreate(t, svc, "cus_1", "10")

	updated, err := svc.Update(context.Background(), UpdateCmd{
		InvoiceID:  inv.ID,
		CustomerID: "cus_2",
		Amount:     "25.75",
		Status:     "paid",
	})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if updated.CustomerID != "cus_2" || updated.AmountCents != 2575 || updated.Status != domain.StatusPaid {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	stored := repo.byID[inv.ID]
	if stored.AmountCents != 2575 {
		t.Fatalf("persisted %d cents, expected 2575", stored.AmountCents)
	}
	for _, key := range []string{cacheKeyList, cacheKeyDetails(inv.ID)} {
		if !slices.Contains(cache.deleted, key) {
			t.Fatalf("expected %q invalidated, deleted=%v", key, cache.deleted)
		}
	}
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()

	svc := newSvcForTest(newFakeRepo(), nil)

	_, err := svc.Update(context.Background(), UpdateCmd{
		InvoiceID:  "11111111-1111-1111-1111-111111111111",
		CustomerID: "cus_1",
		Amount:     "10",
		Status:     "paid",
	})
	requireDomainCode(t, err, "invoice_not_found")
}

func TestUpdate_InvalidFieldLeavesStoredUntouched(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newSvcForTest(repo, nil)
	inv := mustCreate(t, svc, "cus_1", "10")

	_, err := svc.Update(context.Background(), UpdateCmd{
		InvoiceID:  inv.ID,
		CustomerID: "cus_2",
		Amount:     "10",
		Status:     "overdue",
	})
	requireDomainCode(t, err, "invalid_field")

	stored := repo.byID[inv.ID]
	if stored.CustomerID != "cus_1" || stored.Status != domain.StatusPending {
		t.Fatalf("stored invoice mutated by failed update: %+v", stored)
	}
}

func TestDelete_RemovesAndInvalidates(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	cache := newFakeCache()
	svc := newSvcForTest(repo, cache)
	inv := mustCreate(t, svc, "cus_1", "10")

	if err := svc.Delete(context.Background(), inv.ID); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if _, ok := repo.byID[inv.ID]; ok {
		t.Fatal("invoice still present after delete")
	}
	for _, key := range []string{cacheKeyList, cacheKeyDetails(inv.ID)} {
		if !slices.Contains(cache.deleted, key) {
			t.Fatalf("expected %q invalidated, deleted=%v", key, cache.deleted)
		}
	}
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	svc := newSvcForTest(newFakeRepo(), nil)
	err := svc.Delete(context.Background(), "11111111-1111-1111-1111-111111111111")
	requireDomainCode(t, err, "invoice_not_found")
}

func TestDelete_EmptyID(t *testing.T) {
	t.Parallel()

	svc := newSvcForTest(newFakeRepo(), nil)
	err := svc.Delete(context.Background(), "  ")
	requireDomainCode(t, err, "missing_field")
}

func TestGet_ReadThroughCache(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	cache := newFakeCache()
	svc := newSvcForTest(repo, cache)
	inv := mustCreate(t, svc, "cus_1", "10")

	got, err := svc.Get(context.Background(), inv.ID)
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if got.ID != inv.ID {
		t.Fatalf("expected %q, got %q", inv.ID, got.ID)
	}
	if !slices.Contains(cache.setKeys, cacheKeyDetails(inv.ID)) {
		t.Fatalf("expected detail key cached, set=%v", cache.setKeys)
	}

	// Second read is served from the cache even after the row is gone.
	repo.getErr = domain.ErrDBUnavailable(context.DeadlineExceeded)
	got, err = svc.Get(context.Background(), inv.ID)
	if err != nil {
		t.Fatalf("expected cache hit, got %v", err)
	}
	if got.ID != inv.ID {
		t.Fatalf("expected %q, got %q", inv.ID, got.ID)
	}
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	svc := newSvcForTest(newFakeRepo(), nil)
	_, err := svc.Get(context.Background(), "11111111-1111-1111-1111-111111111111")
	requireDomainCode(t, err, "invoice_not_found")
}

func TestList_CachesDefaultFirstPage(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	cache := newFakeCache()
	svc := newSvcForTest(repo, cache)
	mustCreate(t, svc, "cus_1", "10")
	mustCreate(t, svc, "cus_2", "20")

	page, err := svc.List(context.Background(), 1, 20)
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if page.Total != 2 || len(page.Items) != 2 {
		t.Fatalf("expected 2 invoices, got total=%d len=%d", page.Total, len(page.Items))
	}
	if !slices.Contains(cache.setKeys, cacheKeyList) {
		t.Fatalf("expected listing cached, set=%v", cache.setKeys)
	}

	calls := repo.listCalls
	if _, err := svc.List(context.Background(), 1, 20); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if repo.listCalls != calls {
		t.Fatalf("expected cache hit, repo queried %d extra time(s)", repo.listCalls-calls)
	}
}

func TestList_NonDefaultPageBypassesCache(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	cache := newFakeCache()
	svc := newSvcForTest(repo, cache)

	if _, err := svc.List(context.Background(), 2, 20); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if _, err := svc.List(context.Background(), 1, 50); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if len(cache.setKeys) != 0 {
		t.Fatalf("expected no cache writes, set=%v", cache.setKeys)
	}
	if repo.listCalls != 2 {
		t.Fatalf("expected 2 repo queries, got %d", repo.listCalls)
	}
}

func TestList_NormalizesPaging(t *testing.T) {
	t.Parallel()

	svc := newSvcForTest(newFakeRepo(), nil)

	page, err := svc.List(context.Background(), -3, 0)
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if page.Page != 1 || page.PageSize != 20 {
		t.Fatalf("expected page=1 size=20, got page=%d size=%d", page.Page, page.PageSize)
	}

	page, err = svc.List(context.Background(), 1, 500)
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if page.PageSize != 100 {
		t.Fatalf("expected size capped at 100, got %d", page.PageSize)
	}
}

func TestInvoiceDateTruncatedToUTCDay(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newSvcForTest(repo, nil)
	inv := mustCreate(t, svc, "cus_1", "10")

	want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	if !inv.Date.Equal(want) {
		t.Fatalf("expected date %v, got %v", want, inv.Date)
	}
	if !inv.CreatedAt.Equal(testNow) {
		t.Fatalf("expected created_at %v, got %v", testNow, inv.CreatedAt)
	}
}
