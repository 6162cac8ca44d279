package karyawan

import "errors"

var (
	ErrInvalidID              = errors.New("karyawan: invalid id")
	ErrInvalidNIK             = errors.New("karyawan: invalid nik")
	ErrInvalidNamaLengkap     = errors.New("karyawan: invalid nama lengkap")
	ErrInvalidAlamat          = errors.New("karyawan: invalid alamat")
	ErrInvalidNoTelepon       = errors.New("karyawan: invalid no telepon")
	ErrInvalidTanggalMasuk    = errors.New("karyawan: invalid tanggal masuk")
	ErrInvalidDepartemenID    = errors.New("karyawan: invalid departemen id")
	ErrInvalidVendorID        = errors.New("karyawan: invalid vendor id")
	ErrKaryawanNotFound       = errors.New("karyawan: not found")
	ErrDepartemenNotFound     = errors.New("karyawan: departemen not found")
	ErrVendorNotFound         = errors.New("karyawan: vendor not found")
	ErrNIKAlreadyExists       = errors.New("karyawan: nik already exists")
	ErrNoTeleponAlreadyExists = errors.New("karyawan: no telepon already exists")
)
