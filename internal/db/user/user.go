package user

import (
	"context"
	"database/sql"
	"errors"
	"time"
	c "verimail/internal/core/domain/common"
	e "verimail/internal/core/domain/errors"
	"verimail/internal/core/domain/user"
	"verimail/internal/db"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"

const userColumns = `id, email, password_hash, created_at, activated_at`

type PgxUserRepository struct {
	db db.Queryable
}

func NewPgxRepository(db db.Queryable) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (email, password_hash, created_at, activated_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userColumns,
		encodeEmail(input.Email),
		encodePasswordHash(input.PasswordHash),
		input.CreatedAt,
		encodeOptionalTime(input.ActivatedAt),
	)
	u, err = scanUser(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, user.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return u, err
	}
	err = u.Validate()
	if err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE id = $1`, int64(id))
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	err = u.Validate()
	if err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE email = $1`, string(email))
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	err = u.Validate()
	if err != nil {
		return u, err
	}
	return u, nil
}

// Activate is idempotent, an already set activated_at timestamp is kept.
func (r *PgxUserRepository) Activate(ctx context.Context, id user.ID, at time.Time) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE "user" SET activated_at = COALESCE(activated_at, $2)
		 WHERE id = $1
		 RETURNING `+userColumns,
		int64(id),
		at,
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	err = u.Validate()
	if err != nil {
		return u, err
	}
	return u, nil
}

func encodeEmail(email c.Optional[c.Email]) sql.NullString {
	return sql.NullString{String: string(email.Value), Valid: email.IsPresent}
}

func encodePasswordHash(ph c.Optional[user.PasswordHash]) sql.NullString {
	return sql.NullString{String: string(ph.Value), Valid: ph.IsPresent}
}

func encodeOptionalTime(at c.Optional[time.Time]) sql.NullTime {
	return sql.NullTime{Time: at.Value, Valid: at.IsPresent}
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var email sql.NullString
	var passwordHash sql.NullString
	var activatedAt sql.NullTime
	err = row.Scan(&u.ID, &email, &passwordHash, &u.CreatedAt, &activatedAt)
	if err != nil {
		return u, err
	}
	u.Email = c.NewOptional(c.Email(email.String), email.Valid)
	u.PasswordHash = c.NewOptional(user.PasswordHash(passwordHash.String), passwordHash.Valid)
	u.ActivatedAt = c.NewOptional(activatedAt.Time, activatedAt.Valid)
	return u, nil
}
