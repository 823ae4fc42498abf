package repository

import (
	"context"

	"ovenbook/internal/domain/oven"
	"ovenbook/internal/infra"
	"ovenbook/internal/infra/db"
	"ovenbook/internal/pkg/pgconv"
	"ovenbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type OvenRepository struct {
	db db.DBTX
}

func NewOvenRepository(dbtx db.DBTX) *OvenRepository {
	return &OvenRepository{db: dbtx}
}

const createOvenSQL = `
INSERT INTO ovens (id, name, status)
VALUES ($1, $2, $3)
RETURNING id`

func (r *OvenRepository) Create(ctx context.Context, ov *oven.Oven) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createOvenSQL, ov.ID(), ov.Name(), ov.Status().String()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create oven", err)
	}

	return id, nil
}

const setOvenStatusSQL = `
UPDATE ovens
SET status = $2, updated_at = now()
WHERE id = $1`

func (r *OvenRepository) SetStatus(ctx context.Context, id uuid.UUID, status oven.Status) error {
	tag, err := r.db.Exec(ctx, setOvenStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update oven status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("oven not found", nil, infra.KindNotFound)
	}

	return nil
}

const findOvenByIDSQL = `
SELECT id, name, status
FROM ovens
WHERE id = $1`

func (r *OvenRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.OvenSnapshot, error) {
	var snap shared.OvenSnapshot
	err := r.db.QueryRow(ctx, findOvenByIDSQL, id).Scan(&snap.ID, &snap.Name, &snap.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("oven not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find oven by ID", err)
	}

	return &snap, nil
}
