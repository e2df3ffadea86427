package database

import (
	"context"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
)

// Cloner is implemented by entities that own child collections, so rows
// handed in or out of a table never alias stored slices.
type Cloner[T any] interface {
	Clone() T
}

// Table is an ordered collection of one entity type with a monotonically
// increasing id generator. Ids are never reused, even after the row
// holding the current maximum is deleted.
type Table[T any, P record.Model[T]] struct {
	db     *DB
	rows   []T
	lastID int64
}

type tableState[T any] struct {
	rows   []T
	lastID int64
}

func NewTable[T any, P record.Model[T]](db *DB) *Table[T, P] {
	t := &Table[T, P]{db: db}
	db.register(t)
	return t
}

func (t *Table[T, P]) snapshot() any {
	rows := make([]T, len(t.rows))
	copy(rows, t.rows)
	return tableState[T]{rows: rows, lastID: t.lastID}
}

func (t *Table[T, P]) restore(state any) {
	s := state.(tableState[T])
	t.rows = s.rows
	t.lastID = s.lastID
}

func clone[T any](row T) T {
	if c, ok := any(row).(Cloner[T]); ok {
		return c.Clone()
	}
	return row
}

func idOf[T any, P record.Model[T]](row *T) int64 {
	return P(row).Record().ID
}

func (t *Table[T, P]) indexOf(id int64) int {
	for i := range t.rows {
		if idOf[T, P](&t.rows[i]) == id {
			return i
		}
	}
	return -1
}

// All returns a copy of every row in insertion order.
func (t *Table[T, P]) All(ctx context.Context) []T {
	defer t.db.rlock(ctx)()

	out := make([]T, len(t.rows))
	for i, row := range t.rows {
		out[i] = clone(row)
	}
	return out
}

func (t *Table[T, P]) Len(ctx context.Context) int {
	defer t.db.rlock(ctx)()
	return len(t.rows)
}

func (t *Table[T, P]) Get(ctx context.Context, id int64) (T, error) {
	defer t.db.rlock(ctx)()

	i := t.indexOf(id)
	if i < 0 {
		var zero T
		return zero, ErrRecordNotFound
	}
	return clone(t.rows[i]), nil
}

// Find returns the first row matching fn.
func (t *Table[T, P]) Find(ctx context.Context, fn func(T) bool) (T, bool) {
	defer t.db.rlock(ctx)()

	for _, row := range t.rows {
		if fn(row) {
			return clone(row), true
		}
	}
	var zero T
	return zero, false
}

func (t *Table[T, P]) insert(row T) T {
	t.lastID++
	now := t.db.Now()
	row = clone(row)
	base := P(&row).Record()
	base.ID = t.lastID
	base.CreateDate = now
	base.UpdateDate = now
	t.rows = append(t.rows, row)
	return clone(row)
}

// Insert appends row, assigning the next id and both timestamps.
func (t *Table[T, P]) Insert(ctx context.Context, row T) T {
	defer t.db.lock(ctx)()
	return t.insert(row)
}

func (t *Table[T, P]) replace(i int, row T) T {
	existing := P(&t.rows[i]).Record()
	row = clone(row)
	base := P(&row).Record()
	base.ID = existing.ID
	base.CreateDate = existing.CreateDate
	base.UpdateDate = t.db.Now()
	t.rows[i] = row
	return clone(row)
}

// Replace swaps the row with the same id in place, keeping its position
// and createdate and refreshing updatedate.
func (t *Table[T, P]) Replace(ctx context.Context, row T) (T, error) {
	defer t.db.lock(ctx)()

	i := t.indexOf(idOf[T, P](&row))
	if i < 0 {
		var zero T
		return zero, ErrRecordNotFound
	}
	return t.replace(i, row), nil
}

// ReplaceUnique is Replace guarded by a natural key: it fails with
// ErrDuplicateKey when a row with another id satisfies conflicts.
func (t *Table[T, P]) ReplaceUnique(ctx context.Context, row T, conflicts func(T) bool) (T, error) {
	defer t.db.lock(ctx)()

	var zero T
	i := t.indexOf(idOf[T, P](&row))
	if i < 0 {
		return zero, ErrRecordNotFound
	}
	for j := range t.rows {
		if j != i && conflicts(t.rows[j]) {
			return zero, ErrDuplicateKey
		}
	}
	return t.replace(i, row), nil
}

// Upsert replaces the first row matching fn with merge(existing) or, when
// nothing matches, inserts row. The second result reports an insert.
func (t *Table[T, P]) Upsert(ctx context.Context, fn func(T) bool, row T, merge func(existing T) T) (T, bool) {
	defer t.db.lock(ctx)()

	for i := range t.rows {
		if fn(t.rows[i]) {
			return t.replace(i, merge(clone(t.rows[i]))), false
		}
	}
	return t.insert(row), true
}

// DeleteWhere removes every row matching fn and reports how many went.
func (t *Table[T, P]) DeleteWhere(ctx context.Context, fn func(T) bool) int {
	defer t.db.lock(ctx)()

	kept := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		if !fn(row) {
			kept = append(kept, row)
		}
	}
	removed := len(t.rows) - len(kept)
	t.rows = kept
	return removed
}

func (t *Table[T, P]) Delete(ctx context.Context, id int64) error {
	defer t.db.lock(ctx)()

	i := t.indexOf(id)
	if i < 0 {
		return ErrRecordNotFound
	}
	t.rows = append(t.rows[:i:i], t.rows[i+1:]...)
	return nil
}
