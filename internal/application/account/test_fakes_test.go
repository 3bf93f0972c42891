package account

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
)

/*
Fakes for ports
*/

type fakeUserRepo struct {
	mu sync.Mutex

	byEmail map[string]domain.User

	// injected errors (if set, method returns error)
	getByEmailErr error
	createErr     error

	createCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]domain.User{}}
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByEmailErr != nil {
		return domain.User{}, f.getByEmailErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.createCalls++
	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	}
	f.byEmail[u.Email] = u
	return u, nil
}

type fakeHasher struct {
	hashFn    func(pw string) (string, error)
	compareFn func(hash, pw string) error
}

func (f *fakeHasher) Hash(pw string) (string, error) {
	if f.hashFn != nil {
		return f.hashFn(pw)
	}
	return "hash:" + pw, nil
}

func (f *fakeHasher) Compare(hash, pw string) error {
	if f.compareFn != nil {
		return f.compareFn(hash, pw)
	}
	if hash != "hash:"+pw {
		return errors.New("mismatch")
	}
	return nil
}

type fakeSigner struct {
	signErr error
}

func (f *fakeSigner) SignAccessToken(userID string, ttl time.Duration) (string, error) {
	if f.signErr != nil {
		return "", f.signErr
	}
	return "tok:" + userID, nil
}

func (f *fakeSigner) VerifyAccessToken(token string) (string, error) {
	return "", errors.New("not used")
}

func newSvcForTest(t *testing.T) (*Service, *fakeUserRepo, *fakeHasher, *fakeSigner) {
	t.Helper()

	users := newFakeUserRepo()
	hasher := &fakeHasher{}
	signer := &fakeSigner{}

	svc := NewService(users, hasher, signer, Config{AccessTTL: 15 * time.Minute})
	return svc, users, hasher, signer
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()

	var de *domain.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected domain error, got %T: %v", err, err)
	}
	if de.Code != code {
		t.Fatalf("expected code %q, got %q (%v)", code, de.Code, err)
	}
}
