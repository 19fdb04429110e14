// README: Issue store backed by PostgreSQL.
package support

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"bettercommute/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, issue *Issue) (types.ID, error) {
	id := types.ID(uuid.NewString())
	_, err := s.db.Exec(ctx, `
		INSERT INTO issues (id, user_id, description, category, image_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		string(id),
		string(issue.UserID),
		issue.Description,
		issue.Category,
		issue.ImagePath,
		issue.CreatedAt,
	)
	if err != nil {
		return "", err
	}
	issue.ID = id
	return id, nil
}
