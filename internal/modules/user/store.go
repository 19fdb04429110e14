// README: Profile store backed by PostgreSQL.
package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bettercommute/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, uid types.ID) (*Profile, error) {
	row := s.db.QueryRow(ctx, `
		SELECT uid, name, email, mobile, created_at, updated_at
		FROM profiles
		WHERE uid = $1`, string(uid),
	)
	var p Profile
	err := row.Scan(&p.UID, &p.Name, &p.Email, &p.Mobile, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert creates the profile on first write and updates it afterwards.
func (s *Store) Upsert(ctx context.Context, p *Profile) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO profiles (uid, name, email, mobile, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (uid) DO UPDATE
		SET name = EXCLUDED.name,
		    email = EXCLUDED.email,
		    mobile = EXCLUDED.mobile,
		    updated_at = NOW()`,
		string(p.UID), p.Name, p.Email, p.Mobile,
	)
	return err
}
