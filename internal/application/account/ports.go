package account

import (
	"context"
	"time"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
)

/*
UserRepo
--------
Persistence port for users.
Only describes WHAT the account service needs, not HOW it's stored.

Create relies on the storage-level unique indexes on email and name:
the repo maps a unique-constraint violation to the matching conflict
error. There is no look-before-insert step, so concurrent signups with
the same email cannot both succeed.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

/*
PasswordHasher
--------------
Abstracts bcrypt / argon2.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenSigner
-----------
Issues access tokens on successful sign-in.
*/
type TokenSigner interface {
	SignAccessToken(userID string, ttl time.Duration) (string, error)
	VerifyAccessToken(token string) (userID string, err error)
}
