package karyawan

import "time"

// Karyawan は従業員エンティティです。
type Karyawan struct {
	ID           string
	NIK          string
	NamaLengkap  string
	Alamat       string
	NoTelepon    string
	TanggalMasuk time.Time
	DepartemenID string
	VendorID     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Departemen   *DepartemenSnapshot
	Vendor       *VendorSnapshot
}

// DepartemenSnapshot は取得時点の所属部署情報のスナップショットです。
type DepartemenSnapshot struct {
	ID             string
	NamaDepartemen string
	SlugDepartemen string
}

// VendorSnapshot は取得時点の所属ベンダー情報のスナップショットです。
type VendorSnapshot struct {
	ID         string
	NamaVendor string
	SlugVendor string
}
