package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/core/departemen"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestDepartemenRepository_List(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewDepartemenRepository(mock)

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{"id", "nama_departemen", "slug_departemen", "created_at", "updated_at"}).
		AddRow("dep-2", "Finance", "finance", now, now).
		AddRow("dep-1", "Production", "production", now, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM departemens")).WillReturnRows(rows)

	departemens, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(departemens) != 2 {
		t.Fatalf("expected 2 departemens, got %d", len(departemens))
	}
	if departemens[0].NamaDepartemen != "Finance" {
		t.Errorf("expected Finance first, got %s", departemens[0].NamaDepartemen)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDepartemenRepository_FindByID_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewDepartemenRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.FindByID(context.Background(), "missing")
	if !errors.Is(err, departemen.ErrDepartemenNotFound) {
		t.Fatalf("expected ErrDepartemenNotFound, got %v", err)
	}
}
