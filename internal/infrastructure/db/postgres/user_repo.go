package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
)

// uniqueViolation is the Postgres error code for unique_violation.
const uniqueViolation = "23505"

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}

	var u domain.User
	err := r.db.QueryRowContext(ctx, getUserByEmailSQL, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return u, nil
}

// Create inserts the user in a single statement. The unique indexes on
// email and name are the duplicate check: a violation maps to the matching
// conflict error, so concurrent signups cannot both pass.
func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	u.Email = normalizeEmail(u.Email)
	u.Name = strings.TrimSpace(u.Name)
	if u.ID == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}
	if u.Name == "" {
		return domain.User{}, domain.ErrMissingField("name")
	}
	if u.Email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}
	if u.PasswordHash == "" {
		return domain.User{}, domain.ErrMissingField("password_hash")
	}

	var created domain.User
	err := r.db.QueryRowContext(ctx, insertUserSQL,
		u.ID, u.Name, u.Email, u.PasswordHash,
	).Scan(
		&created.ID, &created.Name, &created.Email, &created.PasswordHash, &created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "name") {
				return domain.User{}, domain.ErrNameAlreadyExists()
			}
			return domain.User{}, domain.ErrEmailAlreadyExists()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return created, nil
}
