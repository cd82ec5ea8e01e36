package identity

import (
	"context"
	"errors"
	"fmt"
	e "verimail/internal/core/domain/errors"
	"verimail/internal/core/domain/identity"
	"verimail/internal/core/domain/user"
	"verimail/internal/db"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const (
	EXTRA_LABEL_FIELD = "label"
	EXTRA_NOTE_FIELD  = "note"
)

type PgxIdentityRepository struct {
	db db.Queryable
}

func NewPgxIdentityRepository(db db.Queryable) *PgxIdentityRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxIdentityRepository{db: db}
}

func (r *PgxIdentityRepository) Create(
	ctx context.Context,
	input identity.CreateInput,
) (i identity.Identity, err error) {
	extra, err := encodeExtra(input.Label, input.Note)
	if err != nil {
		return i, err
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO user_identity (user_id, type, secret, created_at, extra)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, user_id, type, secret, created_at, extra`,
		int64(input.UserID),
		string(input.Type),
		string(input.Secret),
		input.CreatedAt,
		extra,
	)
	return scanIdentity(row)
}

func (r *PgxIdentityRepository) GetByUserAndType(
	ctx context.Context,
	userID user.ID,
	t identity.Type,
) (i identity.Identity, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, type, secret, created_at, extra
		 FROM user_identity
		 WHERE user_id = $1 AND type = $2
		 ORDER BY id DESC
		 LIMIT 1`,
		int64(userID),
		string(t),
	)
	i, err = scanIdentity(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return i, identity.ErrIdentityDoesNotExist
	}
	return i, err
}

func (r *PgxIdentityRepository) DeleteByUserAndType(
	ctx context.Context,
	userID user.ID,
	t identity.Type,
) error {
	_, err := r.db.Exec(
		ctx,
		`DELETE FROM user_identity WHERE user_id = $1 AND type = $2`,
		int64(userID),
		string(t),
	)
	return err
}

func encodeExtra(label string, note string) (encoded pgtype.JSONB, err error) {
	extra := make(map[string]interface{})
	extra[EXTRA_LABEL_FIELD] = label
	extra[EXTRA_NOTE_FIELD] = note
	if err := encoded.Set(extra); err != nil {
		return encoded, fmt.Errorf("could not encode identity extra due to error: %w", err)
	}
	return encoded, nil
}

func decodeExtra(encoded pgtype.JSONB) (label string, note string, err error) {
	m, ok := encoded.Get().(map[string]interface{})
	if !ok {
		return "", "", fmt.Errorf("could not cast JSONB encoded value: %v", encoded)
	}
	if rawLabel, ok := m[EXTRA_LABEL_FIELD]; ok {
		label, _ = rawLabel.(string)
	}
	if rawNote, ok := m[EXTRA_NOTE_FIELD]; ok {
		note, _ = rawNote.(string)
	}
	return label, note, nil
}

func scanIdentity(row pgx.Row) (i identity.Identity, err error) {
	var extra pgtype.JSONB
	err = row.Scan(&i.ID, &i.UserID, &i.Type, &i.Secret, &i.CreatedAt, &extra)
	if err != nil {
		return i, err
	}
	i.Label, i.Note, err = decodeExtra(extra)
	return i, err
}
