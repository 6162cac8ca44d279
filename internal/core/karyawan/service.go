package karyawan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service は従業員に関するユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
}

// UseCase は従業員ユースケースの公開インターフェースです。
type UseCase interface {
	CreateKaryawan(ctx context.Context, in CreateKaryawanInput) (*Karyawan, error)
	GetKaryawan(ctx context.Context, in GetKaryawanInput) (*Karyawan, error)
	ListKaryawans(ctx context.Context) ([]*Karyawan, error)
	UpdateKaryawan(ctx context.Context, in UpdateKaryawanInput) (*Karyawan, error)
	DeleteKaryawan(ctx context.Context, in DeleteKaryawanInput) (*Karyawan, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, clock: clock, tx: tx}
}

// CreateKaryawanInput は従業員作成時の入力です。全項目必須です。
type CreateKaryawanInput struct {
	NIK          string
	NamaLengkap  string
	Alamat       string
	NoTelepon    string
	TanggalMasuk time.Time
	DepartemenID string
	VendorID     string
}

// UpdateKaryawanInput は従業員更新時の入力です。nil のフィールドは変更しません。
type UpdateKaryawanInput struct {
	ID           string
	NIK          *string
	NamaLengkap  *string
	Alamat       *string
	NoTelepon    *string
	TanggalMasuk *time.Time
	DepartemenID *string
	VendorID     *string
}

// DeleteKaryawanInput は従業員削除時の入力です。
type DeleteKaryawanInput struct {
	ID string
}

// GetKaryawanInput は従業員取得時の入力です。
type GetKaryawanInput struct {
	ID string
}

// CreateKaryawan は新しい従業員を作成します。NIK と電話番号は全従業員で一意です。
func (s *Service) CreateKaryawan(ctx context.Context, in CreateKaryawanInput) (*Karyawan, error) {
	nik, err := normalizeRequired(in.NIK, ErrInvalidNIK)
	if err != nil {
		return nil, err
	}

	nama, err := normalizeRequired(in.NamaLengkap, ErrInvalidNamaLengkap)
	if err != nil {
		return nil, err
	}

	alamat, err := normalizeRequired(in.Alamat, ErrInvalidAlamat)
	if err != nil {
		return nil, err
	}

	noTelepon, err := normalizeRequired(in.NoTelepon, ErrInvalidNoTelepon)
	if err != nil {
		return nil, err
	}

	departemenID, err := normalizeRequired(in.DepartemenID, ErrInvalidDepartemenID)
	if err != nil {
		return nil, err
	}

	vendorID, err := normalizeRequired(in.VendorID, ErrInvalidVendorID)
	if err != nil {
		return nil, err
	}

	if in.TanggalMasuk.IsZero() {
		return nil, ErrInvalidTanggalMasuk
	}
	tanggalMasuk := normalizeDate(in.TanggalMasuk)

	var created *Karyawan
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.ensureNIKNotExists(txCtx, nik, ""); err != nil {
			return err
		}
		if err := s.ensureNoTeleponNotExists(txCtx, noTelepon, ""); err != nil {
			return err
		}

		now := s.clock.Now()
		k := &Karyawan{
			NIK:          nik,
			NamaLengkap:  nama,
			Alamat:       alamat,
			NoTelepon:    noTelepon,
			TanggalMasuk: tanggalMasuk,
			DepartemenID: departemenID,
			VendorID:     vendorID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		result, err := s.repo.Create(txCtx, k)
		if err != nil {
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateKaryawan は従業員情報を部分更新します。一意性チェックは更新対象自身を除外します。
func (s *Service) UpdateKaryawan(ctx context.Context, in UpdateKaryawanInput) (*Karyawan, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *Karyawan
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if in.NIK != nil {
			nik, err := normalizeRequired(*in.NIK, ErrInvalidNIK)
			if err != nil {
				return err
			}
			if nik != existing.NIK {
				if err := s.ensureNIKNotExists(txCtx, nik, existing.ID); err != nil {
					return err
				}
				existing.NIK = nik
			}
		}

		if in.NamaLengkap != nil {
			nama, err := normalizeRequired(*in.NamaLengkap, ErrInvalidNamaLengkap)
			if err != nil {
				return err
			}
			existing.NamaLengkap = nama
		}

		if in.Alamat != nil {
			alamat, err := normalizeRequired(*in.Alamat, ErrInvalidAlamat)
			if err != nil {
				return err
			}
			existing.Alamat = alamat
		}

		if in.NoTelepon != nil {
			noTelepon, err := normalizeRequired(*in.NoTelepon, ErrInvalidNoTelepon)
			if err != nil {
				return err
			}
			if noTelepon != existing.NoTelepon {
				if err := s.ensureNoTeleponNotExists(txCtx, noTelepon, existing.ID); err != nil {
					return err
				}
				existing.NoTelepon = noTelepon
			}
		}

		if in.TanggalMasuk != nil {
			if in.TanggalMasuk.IsZero() {
				return ErrInvalidTanggalMasuk
			}
			existing.TanggalMasuk = normalizeDate(*in.TanggalMasuk)
		}

		if in.DepartemenID != nil {
			departemenID, err := normalizeRequired(*in.DepartemenID, ErrInvalidDepartemenID)
			if err != nil {
				return err
			}
			existing.DepartemenID = departemenID
		}

		if in.VendorID != nil {
			vendorID, err := normalizeRequired(*in.VendorID, ErrInvalidVendorID)
			if err != nil {
				return err
			}
			existing.VendorID = vendorID
		}

		existing.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteKaryawan は従業員を削除し、削除した従業員を返します。
func (s *Service) DeleteKaryawan(ctx context.Context, in DeleteKaryawanInput) (*Karyawan, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var deleted *Karyawan
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		result, err := s.repo.Delete(txCtx, in.ID)
		if err != nil {
			return err
		}
		deleted = result
		return nil
	}); err != nil {
		return nil, err
	}

	return deleted, nil
}

// GetKaryawan は従業員を取得します。
func (s *Service) GetKaryawan(ctx context.Context, in GetKaryawanInput) (*Karyawan, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Karyawan
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ListKaryawans は従業員の全件を登録日時の降順で取得します。
func (s *Service) ListKaryawans(ctx context.Context) ([]*Karyawan, error) {
	var karyawans []*Karyawan
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.List(txCtx)
		if err != nil {
			return err
		}
		karyawans = result
		return nil
	}); err != nil {
		return nil, err
	}

	return karyawans, nil
}

func (s *Service) ensureNIKNotExists(ctx context.Context, nik, excludeID string) error {
	existing, err := s.repo.FindByNIK(ctx, nik)
	if err != nil && !errors.Is(err, ErrKaryawanNotFound) {
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return ErrNIKAlreadyExists
	}
	return nil
}

func (s *Service) ensureNoTeleponNotExists(ctx context.Context, noTelepon, excludeID string) error {
	existing, err := s.repo.FindByNoTelepon(ctx, noTelepon)
	if err != nil && !errors.Is(err, ErrKaryawanNotFound) {
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return ErrNoTeleponAlreadyExists
	}
	return nil
}

func normalizeRequired(raw string, invalid error) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", invalid
	}
	return trimmed, nil
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
