package graphql

import (
	"errors"
	"testing"

	"github.com/ogurasousui/hr-graphql-clean-arch/internal/core/departemen"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/core/karyawan"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/core/vendor"
)

func TestToResolverError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      error
		code    string
		message string
	}{
		{"invalid nik", karyawan.ErrInvalidNIK, CodeValidationFailed, "NIK wajib diisi"},
		{"invalid nama", karyawan.ErrInvalidNamaLengkap, CodeValidationFailed, "Nama lengkap wajib diisi"},
		{"invalid tanggal", karyawan.ErrInvalidTanggalMasuk, CodeValidationFailed, "Tanggal masuk wajib diisi"},
		{"invalid departemen", karyawan.ErrInvalidDepartemenID, CodeValidationFailed, "Departemen wajib dipilih"},
		{"duplicate nik", karyawan.ErrNIKAlreadyExists, CodeDuplicateField, "NIK sudah terdaftar"},
		{"duplicate telepon", karyawan.ErrNoTeleponAlreadyExists, CodeDuplicateField, "Nomor telepon sudah terdaftar"},
		{"karyawan not found", karyawan.ErrKaryawanNotFound, CodeNotFound, "Karyawan tidak ditemukan"},
		{"departemen not found", departemen.ErrDepartemenNotFound, CodeNotFound, "Departemen tidak ditemukan"},
		{"vendor not found", vendor.ErrVendorNotFound, CodeNotFound, "Vendor tidak ditemukan"},
		{"unknown", errors.New("boom"), CodeInternal, "Terjadi kesalahan pada server"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mapped := toResolverError(tc.in)

			var resolverErr *Error
			if !errors.As(mapped, &resolverErr) {
				t.Fatalf("expected *Error, got %T", mapped)
			}
			if resolverErr.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, resolverErr.Code)
			}
			if resolverErr.Message != tc.message {
				t.Errorf("expected message %q, got %q", tc.message, resolverErr.Message)
			}
			if ext := resolverErr.Extensions(); ext["code"] != tc.code {
				t.Errorf("expected extensions code %s, got %v", tc.code, ext["code"])
			}
		})
	}
}

func TestToResolverError_Nil(t *testing.T) {
	t.Parallel()

	if err := toResolverError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
