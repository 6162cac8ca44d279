package dataview

import (
	"fmt"
	"testing"
	"time"

	"github.com/ogurasousui/hr-graphql-clean-arch/internal/client/model"
)

func makeKaryawans(n int) []model.Karyawan {
	records := make([]model.Karyawan, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, model.Karyawan{
			ID:             fmt.Sprintf("kry-%03d", i),
			NIK:            fmt.Sprintf("%03d", i),
			NamaLengkap:    fmt.Sprintf("Karyawan %03d", i),
			NoTelepon:      fmt.Sprintf("0812%06d", i),
			DepartemenID:   fmt.Sprintf("dep-%d", i%3),
			DepartemenNama: fmt.Sprintf("Departemen %d", i%3),
			VendorID:       fmt.Sprintf("ven-%d", i%2),
			VendorNama:     fmt.Sprintf("Vendor %d", i%2),
			TanggalMasuk:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
		})
	}
	return records
}

func newViewWith(records []model.Karyawan) *View {
	v := New()
	v.Replace(records)
	return v
}

func collectIDs(page Page) []string {
	ids := make([]string, 0, len(page.Items))
	for _, k := range page.Items {
		ids = append(ids, k.ID)
	}
	return ids
}

func TestView_EmptyCollection(t *testing.T) {
	t.Parallel()

	v := New()
	page := v.Page()

	if len(page.Items) != 0 {
		t.Errorf("expected no items, got %d", len(page.Items))
	}
	if page.TotalItems != 0 {
		t.Errorf("expected 0 total items, got %d", page.TotalItems)
	}
	if page.TotalPages != 0 {
		t.Errorf("expected 0 total pages, got %d", page.TotalPages)
	}
	if page.CurrentPage != 1 {
		t.Errorf("expected current page 1, got %d", page.CurrentPage)
	}
}

func TestView_Pagination(t *testing.T) {
	t.Parallel()

	v := newViewWith(makeKaryawans(250))

	page := v.Page()
	if page.TotalItems != 250 {
		t.Errorf("expected 250 total items, got %d", page.TotalItems)
	}
	if page.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", page.TotalPages)
	}
	if len(page.Items) != 100 {
		t.Errorf("expected 100 items on page 1, got %d", len(page.Items))
	}

	v.SetPage(3)
	page = v.Page()
	if len(page.Items) != 50 {
		t.Errorf("expected 50 items on page 3, got %d", len(page.Items))
	}
	if page.CurrentPage != 3 {
		t.Errorf("expected current page 3, got %d", page.CurrentPage)
	}
}

func TestView_SearchResetsPage(t *testing.T) {
	t.Parallel()

	v := newViewWith(makeKaryawans(250))
	v.SetPage(3)

	v.SetSearchQuery("Karyawan")

	if page := v.Page(); page.CurrentPage != 1 {
		t.Fatalf("expected page reset to 1, got %d", page.CurrentPage)
	}
}

func TestView_SortDoesNotResetPage(t *testing.T) {
	t.Parallel()

	v := newViewWith(makeKaryawans(250))
	v.SetPage(2)

	v.SetSort(SortKeyNamaLengkap)

	if page := v.Page(); page.CurrentPage != 2 {
		t.Fatalf("expected page to remain 2, got %d", page.CurrentPage)
	}
}

func TestView_SearchCaseInsensitive(t *testing.T) {
	t.Parallel()

	records := []model.Karyawan{
		{ID: "kry-1", NIK: "001", NamaLengkap: "Budi", DepartemenNama: "IT"},
		{ID: "kry-2", NIK: "002", NamaLengkap: "Ani", DepartemenNama: "HR"},
	}
	v := newViewWith(records)

	v.SetSearchQuery("ani")
	page := v.Page()

	if len(page.Items) != 1 || page.Items[0].ID != "kry-2" {
		t.Fatalf("expected only Ani to match, got %v", collectIDs(page))
	}
}

func TestView_SearchPhoneNumber(t *testing.T) {
	t.Parallel()

	records := []model.Karyawan{
		{ID: "kry-1", NamaLengkap: "Budi", NoTelepon: "081234567890"},
		{ID: "kry-2", NamaLengkap: "Ani", NoTelepon: "085511112222"},
	}
	v := newViewWith(records)

	v.SetSearchQuery(" 0855 ")
	page := v.Page()

	if len(page.Items) != 1 || page.Items[0].ID != "kry-2" {
		t.Fatalf("expected phone match after trimming, got %v", collectIDs(page))
	}
}

func TestView_FilterClearRoundTrip(t *testing.T) {
	t.Parallel()

	records := makeKaryawans(30)
	v := newViewWith(records)
	before := collectIDs(v.Page())

	v.SetFilter(FilterDepartemen, "dep-does-not-exist")
	if page := v.Page(); page.TotalItems != 0 {
		t.Fatalf("expected no matches, got %d", page.TotalItems)
	}

	v.ClearFilters()
	after := collectIDs(v.Page())

	if len(before) != len(after) {
		t.Fatalf("expected identical collection after clear, got %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("order changed after clear at %d: %s vs %s", i, before[i], after[i])
		}
	}
}

func TestView_FilterSearchCommutative(t *testing.T) {
	t.Parallel()

	records := makeKaryawans(60)

	filterThenSearch := newViewWith(records)
	filterThenSearch.SetFilter(FilterDepartemen, "dep-1")
	filterThenSearch.SetSearchQuery("Karyawan 0")

	searchThenFilter := newViewWith(records)
	searchThenFilter.SetSearchQuery("Karyawan 0")
	searchThenFilter.SetFilter(FilterDepartemen, "dep-1")

	a := collectIDs(filterThenSearch.Page())
	b := collectIDs(searchThenFilter.Page())

	if len(a) != len(b) {
		t.Fatalf("expected same result set, got %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("order differs at %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestView_SortStabilityWithTies(t *testing.T) {
	t.Parallel()

	// 全員同じ部署名なのでソートしても取得順が保たれます。
	records := []model.Karyawan{
		{ID: "kry-1", DepartemenNama: "Production"},
		{ID: "kry-2", DepartemenNama: "Production"},
		{ID: "kry-3", DepartemenNama: "Production"},
	}
	v := newViewWith(records)

	v.SetSort(SortKeyDepartemen)
	asc := collectIDs(v.Page())

	v.SetSort(SortKeyDepartemen)
	desc := collectIDs(v.Page())

	expected := []string{"kry-1", "kry-2", "kry-3"}
	for i, id := range expected {
		if asc[i] != id {
			t.Errorf("ascending tie order broken at %d: %s", i, asc[i])
		}
		if desc[i] != id {
			t.Errorf("descending tie order broken at %d: %s", i, desc[i])
		}
	}
}

func TestView_SortReversesWithoutTies(t *testing.T) {
	t.Parallel()

	records := []model.Karyawan{
		{ID: "kry-1", NamaLengkap: "Budi"},
		{ID: "kry-2", NamaLengkap: "Ani"},
		{ID: "kry-3", NamaLengkap: "Citra"},
	}
	v := newViewWith(records)

	v.SetSort(SortKeyNamaLengkap)
	asc := collectIDs(v.Page())

	v.SetSort(SortKeyNamaLengkap)
	desc := collectIDs(v.Page())

	if asc[0] != "kry-2" || asc[1] != "kry-1" || asc[2] != "kry-3" {
		t.Fatalf("unexpected ascending order: %v", asc)
	}
	for i := range asc {
		if asc[i] != desc[len(desc)-1-i] {
			t.Fatalf("descending is not exact reverse: %v vs %v", asc, desc)
		}
	}
}

func TestView_SortNewKeyResetsDirection(t *testing.T) {
	t.Parallel()

	records := []model.Karyawan{
		{ID: "kry-1", NamaLengkap: "Budi", NIK: "002"},
		{ID: "kry-2", NamaLengkap: "Ani", NIK: "001"},
	}
	v := newViewWith(records)

	v.SetSort(SortKeyNamaLengkap)
	v.SetSort(SortKeyNamaLengkap)

	// 別キーへ切り替えると昇順に戻ります。
	v.SetSort(SortKeyNIK)
	page := v.Page()

	if page.Items[0].NIK != "001" {
		t.Fatalf("expected ascending by NIK after key change, got %v", collectIDs(page))
	}
}

func TestView_SortByTanggalMasuk(t *testing.T) {
	t.Parallel()

	records := []model.Karyawan{
		{ID: "kry-1", TanggalMasuk: time.Date(2023, 4, 17, 0, 0, 0, 0, time.UTC)},
		{ID: "kry-2", TanggalMasuk: time.Date(2021, 1, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "kry-3"}, // 日付不明はゼロ値のまま先頭に並びます。
	}
	v := newViewWith(records)

	v.SetSort(SortKeyTanggalMasuk)
	ids := collectIDs(v.Page())

	expected := []string{"kry-3", "kry-2", "kry-1"}
	for i, id := range expected {
		if ids[i] != id {
			t.Fatalf("unexpected order: %v", ids)
		}
	}
}

func TestView_PageClampedWhenFilterShrinks(t *testing.T) {
	t.Parallel()

	v := newViewWith(makeKaryawans(250))
	v.SetPage(3)

	// SetPage はリセット対象外なので、絞り込み後の再計算でクランプされます。
	v.SetFilter(FilterVendor, "ven-0")
	v.SetPage(9)

	page := v.Page()
	if page.CurrentPage > page.TotalPages {
		t.Fatalf("current page %d exceeds total pages %d", page.CurrentPage, page.TotalPages)
	}
}

func TestView_SetPageSize(t *testing.T) {
	t.Parallel()

	v := newViewWith(makeKaryawans(250))
	v.SetPage(3)

	v.SetPageSize(200)
	page := v.Page()
	if page.TotalPages != 2 {
		t.Errorf("expected 2 pages with size 200, got %d", page.TotalPages)
	}
	if page.CurrentPage != 1 {
		t.Errorf("expected page reset to 1 after size change, got %d", page.CurrentPage)
	}

	// 許可されていないサイズは無視します。
	v.SetPageSize(7)
	if page := v.Page(); page.TotalPages != 2 {
		t.Errorf("expected size unchanged, got %d pages", page.TotalPages)
	}
}

func TestView_ReplaceDoesNotAliasSource(t *testing.T) {
	t.Parallel()

	records := makeKaryawans(3)
	v := newViewWith(records)

	records[0].NamaLengkap = "Diubah"

	page := v.Page()
	if page.Items[0].NamaLengkap == "Diubah" {
		t.Fatal("expected view to hold its own copy of the collection")
	}
}
