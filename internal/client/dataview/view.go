// Package dataview は取得済みの従業員コレクションから表示用の派生ビューを計算します。
// 検索・絞り込み・ソート・ページングの状態を保持し、元のコレクションは変更しません。
package dataview

import (
	"sort"
	"strings"

	"github.com/ogurasousui/hr-graphql-clean-arch/internal/client/model"
)

// SortKey はソート対象の列を表します。
type SortKey string

const (
	SortKeyNIK          SortKey = "nik"
	SortKeyNamaLengkap  SortKey = "namaLengkap"
	SortKeyDepartemen   SortKey = "departemen"
	SortKeyVendor       SortKey = "vendor"
	SortKeyNoTelepon    SortKey = "noTelepon"
	SortKeyTanggalMasuk SortKey = "tanggalMasuk"
)

// FilterField は等値絞り込みの対象フィールドです。
type FilterField string

const (
	FilterDepartemen FilterField = "departemen"
	FilterVendor     FilterField = "vendor"
)

// 選択可能なページサイズです。
var allowedPageSizes = map[int]struct{}{
	100: {},
	200: {},
	500: {},
}

// DefaultPageSize は初期状態のページサイズです。
const DefaultPageSize = 100

// Page は派生ビューの 1 ページ分の計算結果です。
type Page struct {
	Items       []model.Karyawan
	TotalItems  int
	TotalPages  int
	CurrentPage int
}

// View は派生ビューの状態を保持します。同時アクセスは想定していません。
type View struct {
	source []model.Karyawan

	searchQuery  string
	departemenID string
	vendorID     string

	sortKey        SortKey
	sortDescending bool

	currentPage int
	pageSize    int
}

// New は空のコレクションを持つ View を生成します。
func New() *View {
	return &View{
		currentPage: 1,
		pageSize:    DefaultPageSize,
	}
}

// Replace はコレクション全体を差し替えます。スライスはコピーして保持します。
func (v *View) Replace(records []model.Karyawan) {
	v.source = make([]model.Karyawan, len(records))
	copy(v.source, records)
}

// SetSearchQuery は検索文字列を設定し、ページを先頭に戻します。
func (v *View) SetSearchQuery(query string) {
	if v.searchQuery == query {
		return
	}
	v.searchQuery = query
	v.currentPage = 1
}

// SetFilter は指定フィールドの等値絞り込みを設定します。id が空文字の場合は解除します。
// 絞り込みの変更はページを先頭に戻します。
func (v *View) SetFilter(field FilterField, id string) {
	switch field {
	case FilterDepartemen:
		if v.departemenID == id {
			return
		}
		v.departemenID = id
	case FilterVendor:
		if v.vendorID == id {
			return
		}
		v.vendorID = id
	default:
		return
	}
	v.currentPage = 1
}

// ClearFilters は検索文字列と両方の絞り込みを解除します。ソートとページサイズは保持します。
func (v *View) ClearFilters() {
	v.searchQuery = ""
	v.departemenID = ""
	v.vendorID = ""
	v.currentPage = 1
}

// SetSort はソートキーを設定します。同じキーを再度指定すると方向が反転し、
// 別のキーを指定すると昇順に戻ります。ページ位置は変更しません。
func (v *View) SetSort(key SortKey) {
	if _, ok := comparators[key]; !ok {
		return
	}
	if v.sortKey == key {
		v.sortDescending = !v.sortDescending
		return
	}
	v.sortKey = key
	v.sortDescending = false
}

// SetPage は表示ページを設定します。範囲外の値は Page 計算時にクランプされます。
func (v *View) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	v.currentPage = n
}

// SetPageSize はページサイズを設定し、ページを先頭に戻します。
// 許可されていないサイズは無視します。
func (v *View) SetPageSize(size int) {
	if _, ok := allowedPageSizes[size]; !ok {
		return
	}
	if v.pageSize == size {
		return
	}
	v.pageSize = size
	v.currentPage = 1
}

// Page は現在の状態から 1 ページ分の派生ビューを計算します。
// 絞り込み、検索、ソート、ページングの順で適用します。
func (v *View) Page() Page {
	filtered := v.applyFilters(v.source)
	filtered = v.applySearch(filtered)
	v.applySort(filtered)

	totalItems := len(filtered)
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + v.pageSize - 1) / v.pageSize
	}

	if max := maxPage(totalPages); v.currentPage > max {
		v.currentPage = max
	}

	start := (v.currentPage - 1) * v.pageSize
	end := start + v.pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	items := make([]model.Karyawan, end-start)
	copy(items, filtered[start:end])

	return Page{
		Items:       items,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: v.currentPage,
	}
}

func maxPage(totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	return totalPages
}

func (v *View) applyFilters(records []model.Karyawan) []model.Karyawan {
	result := make([]model.Karyawan, 0, len(records))
	for _, k := range records {
		if v.departemenID != "" && k.DepartemenID != v.departemenID {
			continue
		}
		if v.vendorID != "" && k.VendorID != v.vendorID {
			continue
		}
		result = append(result, k)
	}
	return result
}

// applySearch は検索文字列で部分一致検索します。NIK、氏名、部署名、ベンダー名は
// 大文字小文字を無視し、電話番号は数字列なのでそのまま比較します。
func (v *View) applySearch(records []model.Karyawan) []model.Karyawan {
	query := strings.TrimSpace(v.searchQuery)
	if query == "" {
		return records
	}
	lowered := strings.ToLower(query)

	result := make([]model.Karyawan, 0, len(records))
	for _, k := range records {
		if matchesQuery(k, lowered, query) {
			result = append(result, k)
		}
	}
	return result
}

func matchesQuery(k model.Karyawan, lowered, raw string) bool {
	if strings.Contains(strings.ToLower(k.NIK), lowered) {
		return true
	}
	if strings.Contains(strings.ToLower(k.NamaLengkap), lowered) {
		return true
	}
	if strings.Contains(strings.ToLower(k.DepartemenNama), lowered) {
		return true
	}
	if strings.Contains(strings.ToLower(k.VendorNama), lowered) {
		return true
	}
	return strings.Contains(k.NoTelepon, raw)
}

// comparators はソートキーごとの比較関数の対応表です。列を増やすときはここに追加します。
var comparators = map[SortKey]func(a, b model.Karyawan) int{
	SortKeyNIK:         compareBy(func(k model.Karyawan) string { return k.NIK }),
	SortKeyNamaLengkap: compareBy(func(k model.Karyawan) string { return k.NamaLengkap }),
	SortKeyDepartemen:  compareBy(func(k model.Karyawan) string { return k.DepartemenNama }),
	SortKeyVendor:      compareBy(func(k model.Karyawan) string { return k.VendorNama }),
	SortKeyNoTelepon:   compareBy(func(k model.Karyawan) string { return k.NoTelepon }),
	SortKeyTanggalMasuk: func(a, b model.Karyawan) int {
		am, bm := a.TanggalMasuk.UnixMilli(), b.TanggalMasuk.UnixMilli()
		switch {
		case am < bm:
			return -1
		case am > bm:
			return 1
		default:
			return 0
		}
	},
}

func compareBy(extract func(model.Karyawan) string) func(a, b model.Karyawan) int {
	return func(a, b model.Karyawan) int {
		return strings.Compare(extract(a), extract(b))
	}
}

// applySort は設定されたキーで安定ソートします。キー未設定なら取得順を保ちます。
func (v *View) applySort(records []model.Karyawan) {
	if v.sortKey == "" {
		return
	}
	compare, ok := comparators[v.sortKey]
	if !ok {
		return
	}

	sort.SliceStable(records, func(i, j int) bool {
		c := compare(records[i], records[j])
		if v.sortDescending {
			return c > 0
		}
		return c < 0
	})
}
