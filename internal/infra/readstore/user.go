package readstore

import (
	"context"

	"gym-booking/internal/infra"
	"gym-booking/internal/infra/db"
	"gym-booking/internal/usecase"
	"gym-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	dbtx db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) usecase.UserReadStore {
	return &UserReadStore{dbtx: dbtx}
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, password_hash, role, is_active
		FROM users
		WHERE email = $1`

	var v queries.AuthorizedUserView
	err := s.dbtx.QueryRow(ctx, query, email).Scan(&v.ID, &v.Email, &v.PasswordHash, &v.Role, &v.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, nil
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, password_hash, role, is_active
		FROM users
		WHERE id = $1`

	var v queries.AuthorizedUserView
	err := s.dbtx.QueryRow(ctx, query, id).Scan(&v.ID, &v.Email, &v.PasswordHash, &v.Role, &v.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &v, nil
}
