package database

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
)

// DB is the in-memory stand-in for the backend. It owns every table and
// the single lock guarding them; tables never lock on their own.
type DB struct {
	mu     sync.RWMutex
	tables []snapshotter
	now    func() time.Time
}

type Option func(*DB)

// WithClock overrides the clock used for createdate/updatedate.
func WithClock(now func() time.Time) Option {
	return func(db *DB) {
		db.now = now
	}
}

func NewMemoryDB(opts ...Option) *DB {
	db := &DB{now: time.Now}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// Now returns the current store time in UTC, truncated to the second so
// timestamps round-trip through RFC 3339 unchanged.
func (db *DB) Now() time.Time {
	return db.now().UTC().Truncate(time.Second)
}

type txKey struct{}

func (db *DB) inTx(ctx context.Context) bool {
	owner, ok := ctx.Value(txKey{}).(*DB)
	return ok && owner == db
}

func (db *DB) lock(ctx context.Context) func() {
	if db.inTx(ctx) {
		return func() {}
	}
	db.mu.Lock()
	return db.mu.Unlock
}

func (db *DB) rlock(ctx context.Context) func() {
	if db.inTx(ctx) {
		return func() {}
	}
	db.mu.RLock()
	return db.mu.RUnlock
}

type snapshotter interface {
	snapshot() any
	restore(state any)
}

func (db *DB) register(t snapshotter) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.tables = append(db.tables, t)
}

// WithTransaction runs fn while holding the store write lock. Table calls
// made with the ctx passed to fn skip locking. If fn fails or panics every
// table is restored to its state before the call.
func WithTransaction(ctx context.Context, db *DB, fn func(ctx context.Context) error) (err error) {
	if db.inTx(ctx) {
		return fn(ctx)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	states := make([]any, len(db.tables))
	for i, t := range db.tables {
		states[i] = t.snapshot()
	}
	rollback := func() {
		for i, t := range db.tables {
			t.restore(states[i])
		}
	}

	defer func() {
		if p := recover(); p != nil {
			rollback()
			panic(p)
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, db)); err != nil {
		rollback()
		return err
	}
	return nil
}
