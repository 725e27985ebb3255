package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/askarthikey/sellerPro/internal/database"
	"github.com/askarthikey/sellerPro/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	scanFn func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scanFn(dest...) }

type fakeRows struct {
	scans []func(dest ...any) error
	idx   int
	err   error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.scans) }
func (r *fakeRows) Scan(dest ...any) error {
	fn := r.scans[r.idx]
	r.idx++
	return fn(dest...)
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

func scanUser(u model.User) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*string) = u.Username
		*dest[1].(*string) = u.FullName
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(*bool) = u.IsAdmin
		*dest[5].(*bool) = u.IsBlocked
		*dest[6].(*time.Time) = u.CreatedAt
		*dest[7].(**time.Time) = u.LastLoginAt
		return nil
	}
}

func TestGetUserByUsername(t *testing.T) {
	now := time.Now()
	want := model.User{
		Username:     "alice",
		FullName:     "Alice A",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		IsAdmin:      true,
		IsBlocked:    false,
		CreatedAt:    now,
	}
	db := &database.FakeDB{
		QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			require.Equal(t, "alice", args[0])
			return fakeRow{scanFn: scanUser(want)}
		},
	}
	u, err := GetUserByUsername(context.Background(), db, "alice")
	require.NoError(t, err)
	require.Equal(t, want, *u)

	db.QueryRowFn = func(ctx context.Context, sql string, args ...any) pgx.Row {
		return fakeRow{scanFn: func(...any) error { return pgx.ErrNoRows }}
	}
	_, err = GetUserByUsername(context.Background(), db, "missing")
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestCreateUser(t *testing.T) {
	now := time.Now()
	db := &database.FakeDB{
		QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			require.Len(t, args, 6)
			require.Equal(t, "bob", args[0])
			return fakeRow{scanFn: func(dest ...any) error {
				*dest[0].(*time.Time) = now
				return nil
			}}
		},
	}
	u, err := CreateUser(context.Background(), db, &model.User{Username: "bob", PasswordHash: "h"})
	require.NoError(t, err)
	require.Equal(t, now, u.CreatedAt)

	db.QueryRowFn = func(ctx context.Context, sql string, args ...any) pgx.Row {
		return fakeRow{scanFn: func(...any) error { return errors.New("insert") }}
	}
	_, err = CreateUser(context.Background(), db, &model.User{Username: "bob"})
	require.Error(t, err)
}

func TestListUsers(t *testing.T) {
	a := model.User{Username: "a", CreatedAt: time.Now()}
	b := model.User{Username: "b", CreatedAt: time.Now()}
	db := &database.FakeDB{
		QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return &fakeRows{scans: []func(dest ...any) error{scanUser(a), scanUser(b)}}, nil
		},
	}
	users, err := ListUsers(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "a", users[0].Username)
	require.Equal(t, "b", users[1].Username)

	db.QueryFn = func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
		return nil, errors.New("query")
	}
	_, err = ListUsers(context.Background(), db)
	require.Error(t, err)

	db.QueryFn = func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
		return &fakeRows{scans: []func(dest ...any) error{
			func(...any) error { return errors.New("scan") },
		}}, nil
	}
	_, err = ListUsers(context.Background(), db)
	require.Error(t, err)

	db.QueryFn = func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
		return &fakeRows{err: errors.New("rows")}, nil
	}
	_, err = ListUsers(context.Background(), db)
	require.Error(t, err)
}

func TestSetUserBlocked(t *testing.T) {
	db := &database.FakeDB{
		ExecFn: func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			require.Equal(t, true, args[0])
			require.Equal(t, "alice", args[1])
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}
	require.NoError(t, SetUserBlocked(context.Background(), db, "alice", true))

	db.ExecFn = func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("UPDATE 0"), nil
	}
	require.Error(t, SetUserBlocked(context.Background(), db, "missing", false))

	db.ExecFn = func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, errors.New("exec")
	}
	require.Error(t, SetUserBlocked(context.Background(), db, "alice", true))
}

func TestTouchUserLastLogin(t *testing.T) {
	db := &database.FakeDB{
		ExecFn: func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			require.Equal(t, "alice", args[0])
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}
	require.NoError(t, TouchUserLastLogin(context.Background(), db, "alice"))

	db.ExecFn = func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, errors.New("exec")
	}
	require.Error(t, TouchUserLastLogin(context.Background(), db, "alice"))
}
