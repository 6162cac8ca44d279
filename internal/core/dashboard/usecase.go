package dashboard

import "context"

// AttendancePoint は月別の勤怠集計です。
type AttendancePoint struct {
	Month string
	Hadir int
	Izin  int
	Alpha int
}

// DepartmentShare は部署別の人員数です。
type DepartmentShare struct {
	Departemen string
	Jumlah     int
}

// Summary はダッシュボードに表示する集計データです。
type Summary struct {
	Attendance  []AttendancePoint
	Departments []DepartmentShare
}

// UseCase はダッシュボード集計ユースケースのインターフェースを定義します。
type UseCase interface {
	// Summary はダッシュボード用の集計データを返します。
	// 現状は静的なサンプル値を返します。勤怠データの取り込み後に実集計へ置き換えます。
	Summary(ctx context.Context) (*Summary, error)
}

// Service は UseCase のデフォルト実装です。
type Service struct{}

// NewService はダッシュボードユースケースの新しいインスタンスを返します。
func NewService() *Service {
	return &Service{}
}

// Summary は直近 6 ヶ月の勤怠と部署別人員の静的データを返します。
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	return &Summary{
		Attendance: []AttendancePoint{
			{Month: "Jan", Hadir: 186, Izin: 80, Alpha: 12},
			{Month: "Feb", Hadir: 305, Izin: 200, Alpha: 8},
			{Month: "Mar", Hadir: 237, Izin: 120, Alpha: 15},
			{Month: "Apr", Hadir: 73, Izin: 190, Alpha: 5},
			{Month: "Mei", Hadir: 209, Izin: 130, Alpha: 10},
			{Month: "Jun", Hadir: 214, Izin: 140, Alpha: 7},
		},
		Departments: []DepartmentShare{
			{Departemen: "Production", Jumlah: 425},
			{Departemen: "QC", Jumlah: 180},
			{Departemen: "IT", Jumlah: 95},
			{Departemen: "HR", Jumlah: 142},
			{Departemen: "Finance", Jumlah: 87},
			{Departemen: "Lainnya", Jumlah: 305},
		},
	}, nil
}
