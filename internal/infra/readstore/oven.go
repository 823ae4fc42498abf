package readstore

import (
	"context"

	"ovenbook/internal/infra"
	"ovenbook/internal/infra/db"
	"ovenbook/internal/usecase/queries"
)

type OvenReadStore struct {
	db db.DBTX
}

func NewOvenReadStore(dbtx db.DBTX) *OvenReadStore {
	return &OvenReadStore{db: dbtx}
}

const findAllOvensSQL = `
SELECT id, name, status
FROM ovens
ORDER BY name`

func (r *OvenReadStore) FindAll(ctx context.Context) ([]*queries.OvenView, error) {
	rows, err := r.db.Query(ctx, findAllOvensSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ovens", err)
	}
	defer rows.Close()

	var result []*queries.OvenView
	for rows.Next() {
		var view queries.OvenView
		if err := rows.Scan(&view.ID, &view.Name, &view.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan oven row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate oven rows", err)
	}

	return result, nil
}
