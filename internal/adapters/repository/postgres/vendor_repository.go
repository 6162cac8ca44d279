package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/core/vendor"
	pgdb "github.com/ogurasousui/hr-graphql-clean-arch/internal/platform/db/postgres"
)

// VendorRepository は PostgreSQL を利用したベンダーマスタの実装です。
type VendorRepository struct {
	pool pgdb.Queryer
}

// NewVendorRepository は VendorRepository を生成します。
func NewVendorRepository(pool pgdb.Queryer) *VendorRepository {
	return &VendorRepository{pool: pool}
}

// FindByID は ID でベンダーを取得します。
func (r *VendorRepository) FindByID(ctx context.Context, id string) (*vendor.Vendor, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, nama_vendor, slug_vendor, alamat, no_telepon, created_at, updated_at
          FROM vendors
         WHERE id = $1
         LIMIT 1
    `, id)

	return scanVendor(row)
}

// List はベンダーの全件をベンダー名の昇順で取得します。
func (r *VendorRepository) List(ctx context.Context) ([]*vendor.Vendor, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, nama_vendor, slug_vendor, alamat, no_telepon, created_at, updated_at
          FROM vendors
         ORDER BY nama_vendor ASC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vendors := make([]*vendor.Vendor, 0)
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return vendors, nil
}

func scanVendor(row pgx.Row) (*vendor.Vendor, error) {
	var (
		id        string
		nama      string
		slug      string
		alamat    string
		noTelepon string
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&id, &nama, &slug, &alamat, &noTelepon, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vendor.ErrVendorNotFound
		}
		return nil, err
	}

	return &vendor.Vendor{
		ID:         id,
		NamaVendor: nama,
		SlugVendor: slug,
		Alamat:     alamat,
		NoTelepon:  noTelepon,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}
