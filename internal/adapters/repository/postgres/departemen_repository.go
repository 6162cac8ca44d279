package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/core/departemen"
	pgdb "github.com/ogurasousui/hr-graphql-clean-arch/internal/platform/db/postgres"
)

// DepartemenRepository は PostgreSQL を利用した部署マスタの実装です。
type DepartemenRepository struct {
	pool pgdb.Queryer
}

// NewDepartemenRepository は DepartemenRepository を生成します。
func NewDepartemenRepository(pool pgdb.Queryer) *DepartemenRepository {
	return &DepartemenRepository{pool: pool}
}

// FindByID は ID で部署を取得します。
func (r *DepartemenRepository) FindByID(ctx context.Context, id string) (*departemen.Departemen, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, nama_departemen, slug_departemen, created_at, updated_at
          FROM departemens
         WHERE id = $1
         LIMIT 1
    `, id)

	return scanDepartemen(row)
}

// List は部署の全件を部署名の昇順で取得します。
func (r *DepartemenRepository) List(ctx context.Context) ([]*departemen.Departemen, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, nama_departemen, slug_departemen, created_at, updated_at
          FROM departemens
         ORDER BY nama_departemen ASC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departemens := make([]*departemen.Departemen, 0)
	for rows.Next() {
		d, err := scanDepartemen(rows)
		if err != nil {
			return nil, err
		}
		departemens = append(departemens, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departemens, nil
}

func scanDepartemen(row pgx.Row) (*departemen.Departemen, error) {
	var (
		id        string
		nama      string
		slug      string
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&id, &nama, &slug, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, departemen.ErrDepartemenNotFound
		}
		return nil, err
	}

	return &departemen.Departemen{
		ID:             id,
		NamaDepartemen: nama,
		SlugDepartemen: slug,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}
