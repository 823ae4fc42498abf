package oven

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyOvenName   = errors.New("oven name cannot be empty")
	ErrOvenNameTooLong = errors.New("oven name is too long (max 255 characters)")
	ErrInvalidStatus   = errors.New("invalid oven status")
)

const MaxOvenNameLength = 255

// Oven is a shared piece of lab equipment. Status toggling does not touch
// existing bookings; it only gates future booking attempts.
type Oven struct {
	id        uuid.UUID
	name      string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewOven(name string) (*Oven, error) {
	name = strings.TrimSpace(name)
	if err := validateOvenName(name); err != nil {
		return nil, err
	}

	return &Oven{
		id:     uuid.New(),
		name:   name,
		status: StatusActive,
	}, nil
}

func ReconstructOven(id uuid.UUID, name string, status Status, createdAt, updatedAt time.Time) *Oven {
	return &Oven{
		id:        id,
		name:      name,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (o *Oven) IsBookable() bool {
	return o.status == StatusActive
}

func validateOvenName(name string) error {
	if name == "" {
		return ErrEmptyOvenName
	}
	if len(name) > MaxOvenNameLength {
		return ErrOvenNameTooLong
	}
	return nil
}

func (o *Oven) ID() uuid.UUID        { return o.id }
func (o *Oven) Name() string         { return o.name }
func (o *Oven) Status() Status       { return o.status }
func (o *Oven) CreatedAt() time.Time { return o.createdAt }
func (o *Oven) UpdatedAt() time.Time { return o.updatedAt }
