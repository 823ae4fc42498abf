package queries

import (
	"context"
)

type OvenReadStore interface {
	FindAll(ctx context.Context) ([]*OvenView, error)
}

type OvenQueries interface {
	List(ctx context.Context) ([]*OvenView, error)
}

type ovenQueriesImpl struct {
	store OvenReadStore
}

func NewOvenQueries(store OvenReadStore) OvenQueries {
	return &ovenQueriesImpl{store: store}
}

// List returns all ovens ordered by name. Publicly readable: oven
// availability is not sensitive.
func (q *ovenQueriesImpl) List(ctx context.Context) ([]*OvenView, error) {
	return q.store.FindAll(ctx)
}
