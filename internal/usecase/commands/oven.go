package commands

import (
	"context"

	"ovenbook/internal/domain/oven"
	"ovenbook/internal/pkg/errs"
	"ovenbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidOvenName   = errs.New("invalid oven name")
	ErrInvalidOvenStatus = errs.New("invalid oven status")
)

type OvenCommands interface {
	Create(ctx context.Context, name string) (uuid.UUID, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}

type ovenCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewOvenCommands(uow shared.UnitOfWork) OvenCommands {
	return &ovenCommandsImpl{uow: uow}
}

func (o *ovenCommandsImpl) Create(ctx context.Context, name string) (uuid.UUID, error) {
	entity, err := oven.NewOven(name)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidOvenName)
	}

	var id uuid.UUID
	err = o.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Ovens().Create(ctx, entity)
		if err != nil {
			return errs.Wrap(err, "failed to create oven")
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

// SetStatus flips an oven between active and maintenance. Existing bookings
// are untouched; only future booking attempts are gated.
func (o *ovenCommandsImpl) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	st, err := oven.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrInvalidOvenStatus)
	}

	return o.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Ovens().SetStatus(ctx, id, st); err != nil {
			return errs.Wrap(err, "failed to update oven status")
		}
		return nil
	})
}
