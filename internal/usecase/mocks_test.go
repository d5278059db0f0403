package usecase

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"jobboard/internal/database"
)

// fakeDB hands out a recording transaction so tests can assert on commit and
// rollback behavior without a real pool.
type fakeDB struct {
	tx       *fakeTx
	beginErr error
}

func newFakeDB() *fakeDB {
	return &fakeDB{tx: &fakeTx{}}
}

func (d *fakeDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return 0, nil
}

func (d *fakeDB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}

func (d *fakeDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return nil
}

func (d *fakeDB) Ping(ctx context.Context) error { return nil }
func (d *fakeDB) Close() error                   { return nil }
func (d *fakeDB) SQLDB() *sql.DB                 { return nil }

func (d *fakeDB) Begin(ctx context.Context) (database.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return 0, nil
}

func (t *fakeTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}

func (t *fakeTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeCache struct {
	store map[string][]byte
	sets  int
	gets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	c.gets++
	return false, nil
}

func (c *fakeCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	c.sets++
	c.store[key] = []byte("set")
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}
