package karyawan

import "context"

// Repository は従業員永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, k *Karyawan) (*Karyawan, error)
	Update(ctx context.Context, k *Karyawan) (*Karyawan, error)
	// Delete は削除した従業員を返します。存在しない場合は ErrKaryawanNotFound を返します。
	Delete(ctx context.Context, id string) (*Karyawan, error)
	FindByID(ctx context.Context, id string) (*Karyawan, error)
	FindByNIK(ctx context.Context, nik string) (*Karyawan, error)
	FindByNoTelepon(ctx context.Context, noTelepon string) (*Karyawan, error)
	// List は登録日時の降順で全件を返します。ページングはクライアント側で行います。
	List(ctx context.Context) ([]*Karyawan, error)
}
