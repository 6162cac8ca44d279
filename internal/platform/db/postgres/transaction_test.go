package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestTransactionManager_ReadWriteCommit(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	tm := NewTransactionManager(mock)

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite})
	mock.ExpectCommit()

	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		if _, ok := txFromContext(ctx); !ok {
			t.Fatal("transaction not injected into context")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinReadWrite returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTransactionManager_ReadOnlyRollbackOnError(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	tm := NewTransactionManager(mock)

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadOnly})
	mock.ExpectRollback()

	expectedErr := errors.New("usecase error")
	err := tm.WithinReadOnly(context.Background(), func(ctx context.Context) error {
		return expectedErr
	})
	if !errors.Is(err, expectedErr) {
		t.Fatalf("expected %v, got %v", expectedErr, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTransactionManager_NestedReuse(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	tm := NewTransactionManager(mock)

	// 入れ子の呼び出しは外側のトランザクションを引き継ぎ、新規開始は 1 回だけです。
	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite})
	mock.ExpectCommit()

	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		return tm.WithinReadOnly(ctx, func(inner context.Context) error {
			if _, ok := txFromContext(inner); !ok {
				t.Fatal("nested call lost the outer transaction")
			}
			return nil
		})
	})
	if err != nil {
		t.Fatalf("nested transaction returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTransactionManager_NilRunsWithoutTransaction(t *testing.T) {
	t.Parallel()

	tm := NewTransactionManager(nil)

	called := false
	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		called = true
		if _, ok := txFromContext(ctx); ok {
			t.Fatal("expected no transaction in context")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("nil manager returned error: %v", err)
	}
	if !called {
		t.Fatal("expected fn to run")
	}
}

func TestQueryerFromContext(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)

	// トランザクションのないコンテキストでは fallback をそのまま返します。
	if got := QueryerFromContext(context.Background(), mock); got != Queryer(mock) {
		t.Fatalf("expected fallback queryer, got %T", got)
	}

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite})
	mock.ExpectCommit()

	tm := NewTransactionManager(mock)
	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		if got := QueryerFromContext(ctx, mock); got == Queryer(mock) {
			t.Fatal("expected transaction queryer, got fallback")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinReadWrite returned error: %v", err)
	}
}
