package graphql

import (
	"errors"

	"github.com/ogurasousui/hr-graphql-clean-arch/internal/core/departemen"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/core/karyawan"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/core/vendor"
)

// extensions.code に載せるエラー種別です。クライアントはこの値で分類します。
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeDuplicateField   = "DUPLICATE_FIELD"
	CodeNotFound         = "NOT_FOUND"
	CodeInternal         = "INTERNAL"
)

// Error はリゾルバーが返すユーザー向けエラーです。
// gqlerrors.ExtendedError を満たし、extensions.code としてシリアライズされます。
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Extensions は GraphQL レスポンスの extensions フィールドを返します。
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

func toResolverError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, karyawan.ErrInvalidNIK):
		return &Error{Code: CodeValidationFailed, Message: "NIK wajib diisi"}
	case errors.Is(err, karyawan.ErrInvalidNamaLengkap):
		return &Error{Code: CodeValidationFailed, Message: "Nama lengkap wajib diisi"}
	case errors.Is(err, karyawan.ErrInvalidAlamat):
		return &Error{Code: CodeValidationFailed, Message: "Alamat wajib diisi"}
	case errors.Is(err, karyawan.ErrInvalidNoTelepon):
		return &Error{Code: CodeValidationFailed, Message: "Nomor telepon wajib diisi"}
	case errors.Is(err, karyawan.ErrInvalidTanggalMasuk):
		return &Error{Code: CodeValidationFailed, Message: "Tanggal masuk wajib diisi"}
	case errors.Is(err, karyawan.ErrInvalidDepartemenID):
		return &Error{Code: CodeValidationFailed, Message: "Departemen wajib dipilih"}
	case errors.Is(err, karyawan.ErrInvalidVendorID):
		return &Error{Code: CodeValidationFailed, Message: "Vendor wajib dipilih"}
	case errors.Is(err, karyawan.ErrInvalidID):
		return &Error{Code: CodeValidationFailed, Message: "ID tidak valid"}
	case errors.Is(err, karyawan.ErrNIKAlreadyExists):
		return &Error{Code: CodeDuplicateField, Message: "NIK sudah terdaftar"}
	case errors.Is(err, karyawan.ErrNoTeleponAlreadyExists):
		return &Error{Code: CodeDuplicateField, Message: "Nomor telepon sudah terdaftar"}
	case errors.Is(err, karyawan.ErrKaryawanNotFound):
		return &Error{Code: CodeNotFound, Message: "Karyawan tidak ditemukan"}
	case errors.Is(err, karyawan.ErrDepartemenNotFound), errors.Is(err, departemen.ErrDepartemenNotFound):
		return &Error{Code: CodeNotFound, Message: "Departemen tidak ditemukan"}
	case errors.Is(err, karyawan.ErrVendorNotFound), errors.Is(err, vendor.ErrVendorNotFound):
		return &Error{Code: CodeNotFound, Message: "Vendor tidak ditemukan"}
	default:
		return &Error{Code: CodeInternal, Message: "Terjadi kesalahan pada server"}
	}
}
