package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/core/karyawan"
	pgdb "github.com/ogurasousui/hr-graphql-clean-arch/internal/platform/db/postgres"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

const karyawanColumns = `k.id, k.nik, k.nama_lengkap, k.alamat, k.no_telepon, k.tanggal_masuk,
               k.departemen_id, k.vendor_id, k.created_at, k.updated_at,
               d.id, d.nama_departemen, d.slug_departemen,
               v.id, v.nama_vendor, v.slug_vendor`

// KaryawanRepository は PostgreSQL を利用した従業員永続化の実装です。
// 読み取りは常に departemens / vendors と結合し、表示用の名称を解決した状態で返します。
type KaryawanRepository struct {
	pool pgdb.Queryer
}

// NewKaryawanRepository は KaryawanRepository を生成します。
func NewKaryawanRepository(pool pgdb.Queryer) *KaryawanRepository {
	return &KaryawanRepository{pool: pool}
}

// Create は従業員を新規作成します。ID が空の場合は UUID を採番します。
func (r *KaryawanRepository) Create(ctx context.Context, k *karyawan.Karyawan) (*karyawan.Karyawan, error) {
	id := k.ID
	if id == "" {
		id = uuid.NewString()
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        WITH inserted AS (
            INSERT INTO karyawans (id, nik, nama_lengkap, alamat, no_telepon, tanggal_masuk, departemen_id, vendor_id, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
            RETURNING id, nik, nama_lengkap, alamat, no_telepon, tanggal_masuk, departemen_id, vendor_id, created_at, updated_at
        )
        SELECT k.id, k.nik, k.nama_lengkap, k.alamat, k.no_telepon, k.tanggal_masuk,
               k.departemen_id, k.vendor_id, k.created_at, k.updated_at,
               d.id, d.nama_departemen, d.slug_departemen,
               v.id, v.nama_vendor, v.slug_vendor
          FROM inserted k
          JOIN departemens d ON d.id = k.departemen_id
          JOIN vendors v ON v.id = k.vendor_id
    `,
		id,
		k.NIK,
		k.NamaLengkap,
		k.Alamat,
		k.NoTelepon,
		k.TanggalMasuk,
		k.DepartemenID,
		k.VendorID,
		k.CreatedAt,
		k.UpdatedAt,
	)

	created, err := scanKaryawan(row)
	if err != nil {
		return nil, translateKaryawanPgError(err)
	}
	return created, nil
}

// Update は従業員情報を更新します。
func (r *KaryawanRepository) Update(ctx context.Context, k *karyawan.Karyawan) (*karyawan.Karyawan, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        WITH updated AS (
            UPDATE karyawans
               SET nik = $1,
                   nama_lengkap = $2,
                   alamat = $3,
                   no_telepon = $4,
                   tanggal_masuk = $5,
                   departemen_id = $6,
                   vendor_id = $7,
                   updated_at = $8
             WHERE id = $9
            RETURNING id, nik, nama_lengkap, alamat, no_telepon, tanggal_masuk, departemen_id, vendor_id, created_at, updated_at
        )
        SELECT k.id, k.nik, k.nama_lengkap, k.alamat, k.no_telepon, k.tanggal_masuk,
               k.departemen_id, k.vendor_id, k.created_at, k.updated_at,
               d.id, d.nama_departemen, d.slug_departemen,
               v.id, v.nama_vendor, v.slug_vendor
          FROM updated k
          JOIN departemens d ON d.id = k.departemen_id
          JOIN vendors v ON v.id = k.vendor_id
    `,
		k.NIK,
		k.NamaLengkap,
		k.Alamat,
		k.NoTelepon,
		k.TanggalMasuk,
		k.DepartemenID,
		k.VendorID,
		k.UpdatedAt,
		k.ID,
	)

	updated, err := scanKaryawan(row)
	if err != nil {
		return nil, translateKaryawanPgError(err)
	}
	return updated, nil
}

// Delete は従業員を削除し、削除した従業員を返します。
func (r *KaryawanRepository) Delete(ctx context.Context, id string) (*karyawan.Karyawan, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        WITH deleted AS (
            DELETE FROM karyawans
             WHERE id = $1
            RETURNING id, nik, nama_lengkap, alamat, no_telepon, tanggal_masuk, departemen_id, vendor_id, created_at, updated_at
        )
        SELECT k.id, k.nik, k.nama_lengkap, k.alamat, k.no_telepon, k.tanggal_masuk,
               k.departemen_id, k.vendor_id, k.created_at, k.updated_at,
               d.id, d.nama_departemen, d.slug_departemen,
               v.id, v.nama_vendor, v.slug_vendor
          FROM deleted k
          JOIN departemens d ON d.id = k.departemen_id
          JOIN vendors v ON v.id = k.vendor_id
    `, id)

	deleted, err := scanKaryawan(row)
	if err != nil {
		return nil, translateKaryawanPgError(err)
	}
	return deleted, nil
}

// FindByID は ID で従業員を取得します。
func (r *KaryawanRepository) FindByID(ctx context.Context, id string) (*karyawan.Karyawan, error) {
	return r.findByColumn(ctx, "k.id", id)
}

// FindByNIK は NIK で従業員を取得します。
func (r *KaryawanRepository) FindByNIK(ctx context.Context, nik string) (*karyawan.Karyawan, error) {
	return r.findByColumn(ctx, "k.nik", nik)
}

// FindByNoTelepon は電話番号で従業員を取得します。
func (r *KaryawanRepository) FindByNoTelepon(ctx context.Context, noTelepon string) (*karyawan.Karyawan, error) {
	return r.findByColumn(ctx, "k.no_telepon", noTelepon)
}

func (r *KaryawanRepository) findByColumn(ctx context.Context, column, value string) (*karyawan.Karyawan, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+karyawanColumns+`
          FROM karyawans k
          JOIN departemens d ON d.id = k.departemen_id
          JOIN vendors v ON v.id = k.vendor_id
         WHERE `+column+` = $1
         LIMIT 1
    `, value)

	found, err := scanKaryawan(row)
	if err != nil {
		return nil, translateKaryawanPgError(err)
	}
	return found, nil
}

// List は従業員の全件を登録日時の降順で取得します。
func (r *KaryawanRepository) List(ctx context.Context) ([]*karyawan.Karyawan, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+karyawanColumns+`
          FROM karyawans k
          JOIN departemens d ON d.id = k.departemen_id
          JOIN vendors v ON v.id = k.vendor_id
         ORDER BY k.created_at DESC, k.id DESC
    `)
	if err != nil {
		return nil, translateKaryawanPgError(err)
	}
	defer rows.Close()

	karyawans := make([]*karyawan.Karyawan, 0)
	for rows.Next() {
		k, err := scanKaryawan(rows)
		if err != nil {
			return nil, translateKaryawanPgError(err)
		}
		karyawans = append(karyawans, k)
	}

	if err := rows.Err(); err != nil {
		return nil, translateKaryawanPgError(err)
	}

	return karyawans, nil
}

func scanKaryawan(row pgx.Row) (*karyawan.Karyawan, error) {
	var (
		id             string
		nik            string
		namaLengkap    string
		alamat         string
		noTelepon      string
		tanggalMasuk   time.Time
		departemenID   string
		vendorID       string
		createdAt      time.Time
		updatedAt      time.Time
		depID          string
		namaDepartemen string
		slugDepartemen string
		venID          string
		namaVendor     string
		slugVendor     string
	)

	if err := row.Scan(
		&id,
		&nik,
		&namaLengkap,
		&alamat,
		&noTelepon,
		&tanggalMasuk,
		&departemenID,
		&vendorID,
		&createdAt,
		&updatedAt,
		&depID,
		&namaDepartemen,
		&slugDepartemen,
		&venID,
		&namaVendor,
		&slugVendor,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, karyawan.ErrKaryawanNotFound
		}
		return nil, err
	}

	t := tanggalMasuk.UTC()
	tanggal := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	return &karyawan.Karyawan{
		ID:           id,
		NIK:          nik,
		NamaLengkap:  namaLengkap,
		Alamat:       alamat,
		NoTelepon:    noTelepon,
		TanggalMasuk: tanggal,
		DepartemenID: departemenID,
		VendorID:     vendorID,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
		Departemen: &karyawan.DepartemenSnapshot{
			ID:             depID,
			NamaDepartemen: namaDepartemen,
			SlugDepartemen: slugDepartemen,
		},
		Vendor: &karyawan.VendorSnapshot{
			ID:         venID,
			NamaVendor: namaVendor,
			SlugVendor: slugVendor,
		},
	}, nil
}

func translateKaryawanPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return karyawan.ErrKaryawanNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			switch pgErr.ConstraintName {
			case "karyawans_nik_key":
				return karyawan.ErrNIKAlreadyExists
			case "karyawans_no_telepon_key":
				return karyawan.ErrNoTeleponAlreadyExists
			default:
				return err
			}
		case foreignKeyViolationCode:
			switch pgErr.ConstraintName {
			case "karyawans_departemen_id_fkey":
				return karyawan.ErrDepartemenNotFound
			case "karyawans_vendor_id_fkey":
				return karyawan.ErrVendorNotFound
			default:
				return err
			}
		}
	}

	return err
}
