package database

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	record.Base
	Name string
	Tags []string
	Note *string
}

func (w widget) Clone() widget {
	w.Tags = slices.Clone(w.Tags)
	if w.Note != nil {
		n := *w.Note
		w.Note = &n
	}
	return w
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newWidgets(t *testing.T) (*DB, *Table[widget, *widget], *fakeClock) {
	t.Helper()
	c := &fakeClock{now: time.Date(2024, 1, 1, 9, 0, 0, 123, time.UTC)}
	db := NewMemoryDB(WithClock(c.Now))
	return db, NewTable[widget](db), c
}

func TestTable_InsertAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	_, table, _ := newWidgets(t)

	a := table.Insert(ctx, widget{Name: "a"})
	b := table.Insert(ctx, widget{Base: record.Base{ID: 99}, Name: "b"})

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), a.CreateDate)
	assert.Equal(t, a.CreateDate, a.UpdateDate)
	assert.Equal(t, 2, table.Len(ctx))
}

func TestTable_IDsNeverReused(t *testing.T) {
	ctx := context.Background()
	_, table, _ := newWidgets(t)
	table.Insert(ctx, widget{Name: "a"})
	last := table.Insert(ctx, widget{Name: "b"})

	require.NoError(t, table.Delete(ctx, last.ID))
	next := table.Insert(ctx, widget{Name: "c"})

	assert.Equal(t, int64(3), next.ID)
}

func TestTable_ReplaceKeepsPositionAndCreateDate(t *testing.T) {
	ctx := context.Background()
	_, table, clock := newWidgets(t)
	first := table.Insert(ctx, widget{Name: "a"})
	table.Insert(ctx, widget{Name: "b"})

	clock.now = clock.now.Add(time.Hour)
	first.Name = "a2"
	first.CreateDate = time.Time{}
	updated, err := table.Replace(ctx, first)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), updated.CreateDate)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), updated.UpdateDate)
	all := table.All(ctx)
	assert.Equal(t, []string{"a2", "b"}, []string{all[0].Name, all[1].Name})
}

func TestTable_MissingRow(t *testing.T) {
	ctx := context.Background()
	_, table, _ := newWidgets(t)
	table.Insert(ctx, widget{Name: "a"})

	_, err := table.Get(ctx, 5)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	_, err = table.Replace(ctx, widget{Base: record.Base{ID: 5}})
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.ErrorIs(t, table.Delete(ctx, 5), ErrRecordNotFound)
	assert.Equal(t, 1, table.Len(ctx))
}

func TestTable_RowsAreCopies(t *testing.T) {
	ctx := context.Background()
	_, table, _ := newWidgets(t)
	tags := []string{"x"}
	note := "n"
	created := table.Insert(ctx, widget{Name: "a", Tags: tags, Note: &note})

	tags[0] = "mutated"
	note = "mutated"
	created.Tags[0] = "mutated"
	*created.Note = "mutated"
	fetched, err := table.Get(ctx, created.ID)
	require.NoError(t, err)
	fetched.Tags[0] = "mutated"
	*fetched.Note = "mutated"
	listed := table.All(ctx)
	*listed[0].Note = "mutated"

	again, err := table.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, again.Tags)
	assert.Equal(t, "n", *again.Note)
}

func TestTable_ReplaceUnique(t *testing.T) {
	ctx := context.Background()
	_, table, _ := newWidgets(t)
	a := table.Insert(ctx, widget{Name: "a"})
	b := table.Insert(ctx, widget{Name: "b"})
	sameName := func(name string) func(widget) bool {
		return func(w widget) bool { return w.Name == name }
	}

	b.Name = "a"
	_, err := table.ReplaceUnique(ctx, b, sameName(b.Name))
	assert.ErrorIs(t, err, ErrDuplicateKey)

	a.Tags = []string{"own key"}
	updated, err := table.ReplaceUnique(ctx, a, sameName(a.Name))
	require.NoError(t, err)
	assert.Equal(t, []string{"own key"}, updated.Tags)

	_, err = table.ReplaceUnique(ctx, widget{Base: record.Base{ID: 9}}, sameName(""))
	assert.ErrorIs(t, err, ErrRecordNotFound)

	stored, err := table.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "b", stored.Name)
}

func TestTable_DeleteWhere(t *testing.T) {
	ctx := context.Background()
	_, table, _ := newWidgets(t)
	for _, name := range []string{"a", "b", "a", "c"} {
		table.Insert(ctx, widget{Name: name})
	}

	removed := table.DeleteWhere(ctx, func(w widget) bool { return w.Name == "a" })

	assert.Equal(t, 2, removed)
	all := table.All(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, []int64{2, 4}, []int64{all[0].ID, all[1].ID})
	assert.Equal(t, 0, table.DeleteWhere(ctx, func(w widget) bool { return false }))
}

func TestTable_Upsert(t *testing.T) {
	ctx := context.Background()
	_, table, _ := newWidgets(t)
	byName := func(name string) func(widget) bool {
		return func(w widget) bool { return w.Name == name }
	}
	merge := func(existing widget) widget {
		existing.Tags = append(existing.Tags, "merged")
		return existing
	}

	created, inserted := table.Upsert(ctx, byName("a"), widget{Name: "a"}, merge)
	assert.True(t, inserted)

	updated, inserted := table.Upsert(ctx, byName("a"), widget{Name: "a"}, merge)
	assert.False(t, inserted)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, []string{"merged"}, updated.Tags)
	assert.Equal(t, 1, table.Len(ctx))

	found, ok := table.Find(ctx, byName("a"))
	assert.True(t, ok)
	assert.Equal(t, created.ID, found.ID)
	_, ok = table.Find(ctx, byName("z"))
	assert.False(t, ok)
}

func TestWithTransaction_RollsBackEveryTable(t *testing.T) {
	ctx := context.Background()
	db, widgets, _ := newWidgets(t)
	gadgets := NewTable[widget](db)
	existing := widgets.Insert(ctx, widget{Name: "keep"})

	err := WithTransaction(ctx, db, func(ctx context.Context) error {
		widgets.Insert(ctx, widget{Name: "new"})
		gadgets.Insert(ctx, widget{Name: "gadget"})
		existing.Name = "changed"
		if _, err := widgets.Replace(ctx, existing); err != nil {
			return err
		}
		return errors.New("boom")
	})

	require.EqualError(t, err, "boom")
	all := widgets.All(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "keep", all[0].Name)
	assert.Equal(t, 0, gadgets.Len(ctx))

	// The id counter is restored too.
	assert.Equal(t, int64(2), widgets.Insert(ctx, widget{Name: "after"}).ID)
}

func TestWithTransaction_RollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	db, widgets, _ := newWidgets(t)

	assert.Panics(t, func() {
		_ = WithTransaction(ctx, db, func(ctx context.Context) error {
			widgets.Insert(ctx, widget{Name: "new"})
			panic("boom")
		})
	})
	assert.Equal(t, 0, widgets.Len(ctx))
}

func TestWithTransaction_Commits(t *testing.T) {
	ctx := context.Background()
	db, widgets, _ := newWidgets(t)

	err := WithTransaction(ctx, db, func(ctx context.Context) error {
		widgets.Insert(ctx, widget{Name: "a"})
		return WithTransaction(ctx, db, func(ctx context.Context) error {
			widgets.Insert(ctx, widget{Name: "b"})
			return nil
		})
	})

	require.NoError(t, err)
	assert.Equal(t, 2, widgets.Len(ctx))
}

func TestTable_ConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	_, widgets, _ := newWidgets(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			widgets.Insert(ctx, widget{Name: "w"})
			widgets.All(ctx)
		}()
	}
	wg.Wait()

	all := widgets.All(ctx)
	require.Len(t, all, 50)
	seen := make(map[int64]bool)
	for _, w := range all {
		seen[w.ID] = true
	}
	assert.Len(t, seen, 50)
}
