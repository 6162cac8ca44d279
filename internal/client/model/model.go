// Package model はダッシュボードクライアントが扱うレコード型を定義します。
package model

import "time"

// Karyawan はサーバーから取得した従業員レコードです。
// 表示用に所属の名称を平坦化して保持します。
type Karyawan struct {
	ID             string
	NIK            string
	NamaLengkap    string
	Alamat         string
	NoTelepon      string
	TanggalMasuk   time.Time
	DepartemenID   string
	VendorID       string
	DepartemenNama string
	VendorNama     string
}

// Departemen は部署マスタのレコードです。
type Departemen struct {
	ID             string
	NamaDepartemen string
}

// Vendor はベンダーマスタのレコードです。
type Vendor struct {
	ID         string
	NamaVendor string
}
