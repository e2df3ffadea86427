package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/database"
)

// crud adapts a database.Table to the repository shape shared by every
// entity, translating store misses into the entity's domain error.
type crud[T any, P record.Model[T]] struct {
	table    *database.Table[T, P]
	notFound error
}

func newCrud[T any, P record.Model[T]](db *database.DB, notFound error) crud[T, P] {
	return crud[T, P]{
		table:    database.NewTable[T, P](db),
		notFound: notFound,
	}
}

func (c crud[T, P]) wrap(id int64, err error) error {
	if errors.Is(err, database.ErrRecordNotFound) {
		return fmt.Errorf("id %d: %w", id, c.notFound)
	}
	return err
}

func (c crud[T, P]) GetByID(ctx context.Context, id int64) (T, error) {
	row, err := c.table.Get(ctx, id)
	if err != nil {
		return row, c.wrap(id, err)
	}
	return row, nil
}

func (c crud[T, P]) List(ctx context.Context) ([]T, error) {
	return c.table.All(ctx), nil
}

func (c crud[T, P]) Create(ctx context.Context, row T) (T, error) {
	return c.table.Insert(ctx, row), nil
}

func (c crud[T, P]) Update(ctx context.Context, row T) (T, error) {
	id := P(&row).Record().ID
	updated, err := c.table.Replace(ctx, row)
	if err != nil {
		return updated, c.wrap(id, err)
	}
	return updated, nil
}

func (c crud[T, P]) Delete(ctx context.Context, id int64) error {
	if err := c.table.Delete(ctx, id); err != nil {
		return c.wrap(id, err)
	}
	return nil
}

// Count is used by tests and fixtures to check store size.
func (c crud[T, P]) Count(ctx context.Context) int {
	return c.table.Len(ctx)
}
