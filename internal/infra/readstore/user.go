package readstore

import (
	"context"

	"ovenbook/internal/infra"
	"ovenbook/internal/infra/db"
	"ovenbook/internal/pkg/pgconv"
	"ovenbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const findAuthorizedUserByIDSQL = `
SELECT id, email, name, role, is_active
FROM users
WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, findAuthorizedUserByIDSQL, id).Scan(
		&view.ID,
		&view.Email,
		&view.Name,
		&view.Role,
		&view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &view, nil
}

const findAuthorizedUserByEmailSQL = `
SELECT id, email, name, role, is_active, password_hash
FROM users
WHERE email = $1`

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var view queries.AuthorizedUserView
	var passwordHash string
	err := r.db.QueryRow(ctx, findAuthorizedUserByEmailSQL, email).Scan(
		&view.ID,
		&view.Email,
		&view.Name,
		&view.Role,
		&view.IsActive,
		&passwordHash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, passwordHash, nil
}
