package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"

	"workbindr/domain/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// backendQueryable tags connection-level failures from the underlying pool or
// transaction with entities.ErrBackendUnavailable so callers can tell an
// unreachable backend from an internal fault. Row-level outcomes such as
// pgx.ErrNoRows pass through untouched.
type backendQueryable struct {
	q Queryable
}

func (b backendQueryable) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	rows, err := b.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, markUnavailable(err)
	}
	return rows, nil
}

func (b backendQueryable) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return backendRow{row: b.q.QueryRow(ctx, sql, args...)}
}

func (b backendQueryable) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	tag, err := b.q.Exec(ctx, sql, args...)
	if err != nil {
		return tag, markUnavailable(err)
	}
	return tag, nil
}

// backendRow defers error mapping to Scan, where pgx surfaces QueryRow errors.
type backendRow struct {
	row pgx.Row
}

func (r backendRow) Scan(dest ...any) error {
	if err := r.row.Scan(dest...); err != nil {
		return markUnavailable(err)
	}
	return nil
}

func markUnavailable(err error) error {
	if isConnectionFailure(err) {
		return fmt.Errorf("%w: %v", entities.ErrBackendUnavailable, err)
	}
	return err
}

func isConnectionFailure(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET)
}
