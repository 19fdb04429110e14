// README: Profile service: owner-scoped reads and updates.
package user

import (
	"context"
	"errors"
	"strings"

	"bettercommute/internal/types"
)

var (
	ErrNotFound   = errors.New("profile not found")
	ErrBadRequest = errors.New("invalid profile")
)

// ProfileStore is the persistence surface the service needs. *Store satisfies it.
type ProfileStore interface {
	Get(ctx context.Context, uid types.ID) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}

type Service struct {
	store ProfileStore
}

func NewService(store ProfileStore) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, uid types.ID) (*Profile, error) {
	return s.store.Get(ctx, uid)
}

type UpdateCommand struct {
	UID    types.ID
	Name   string
	Email  string
	Mobile string
}

// Update upserts the caller's profile. The email is the identity provider's
// concern; only a basic shape check happens here.
func (s *Service) Update(ctx context.Context, cmd UpdateCommand) (*Profile, error) {
	if cmd.UID == "" || cmd.Name == "" {
		return nil, ErrBadRequest
	}
	if cmd.Email != "" && !strings.Contains(cmd.Email, "@") {
		return nil, ErrBadRequest
	}
	p := &Profile{
		UID:    cmd.UID,
		Name:   cmd.Name,
		Email:  cmd.Email,
		Mobile: cmd.Mobile,
	}
	if err := s.store.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, cmd.UID)
}
