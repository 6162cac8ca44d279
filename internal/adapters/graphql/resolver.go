package graphql

import (
	"strconv"
	"strings"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/core/dashboard"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/core/departemen"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/core/karyawan"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/core/vendor"
)

const dateLayout = "2006-01-02"

// Resolver は GraphQL クエリ・ミューテーションをユースケースへ委譲します。
type Resolver struct {
	karyawans   karyawan.UseCase
	departemens departemen.UseCase
	vendors     vendor.UseCase
	dashboard   dashboard.UseCase
}

// NewResolver は Resolver を生成します。
func NewResolver(k karyawan.UseCase, d departemen.UseCase, v vendor.UseCase, dash dashboard.UseCase) *Resolver {
	return &Resolver{karyawans: k, departemens: d, vendors: v, dashboard: dash}
}

func (r *Resolver) resolveKaryawan(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)

	found, err := r.karyawans.GetKaryawan(p.Context, karyawan.GetKaryawanInput{ID: id})
	if err != nil {
		return nil, toResolverError(err)
	}
	return karyawanPayload(found), nil
}

func (r *Resolver) resolveKaryawans(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.karyawans.ListKaryawans(p.Context)
	if err != nil {
		return nil, toResolverError(err)
	}

	payloads := make([]map[string]interface{}, 0, len(list))
	for _, k := range list {
		payloads = append(payloads, karyawanPayload(k))
	}
	return payloads, nil
}

func (r *Resolver) resolveDepartemens(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.departemens.ListDepartemens(p.Context)
	if err != nil {
		return nil, toResolverError(err)
	}

	payloads := make([]map[string]interface{}, 0, len(list))
	for _, d := range list {
		payloads = append(payloads, departemenPayload(d))
	}
	return payloads, nil
}

func (r *Resolver) resolveVendors(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.vendors.ListVendors(p.Context)
	if err != nil {
		return nil, toResolverError(err)
	}

	payloads := make([]map[string]interface{}, 0, len(list))
	for _, v := range list {
		payloads = append(payloads, vendorPayload(v))
	}
	return payloads, nil
}

func (r *Resolver) resolveDashboard(p graphql.ResolveParams) (interface{}, error) {
	summary, err := r.dashboard.Summary(p.Context)
	if err != nil {
		return nil, toResolverError(err)
	}

	attendance := make([]map[string]interface{}, 0, len(summary.Attendance))
	for _, a := range summary.Attendance {
		attendance = append(attendance, map[string]interface{}{
			"month": a.Month,
			"hadir": a.Hadir,
			"izin":  a.Izin,
			"alpha": a.Alpha,
		})
	}

	departments := make([]map[string]interface{}, 0, len(summary.Departments))
	for _, d := range summary.Departments {
		departments = append(departments, map[string]interface{}{
			"departemen": d.Departemen,
			"jumlah":     d.Jumlah,
		})
	}

	return map[string]interface{}{
		"attendance":  attendance,
		"departments": departments,
	}, nil
}

func (r *Resolver) resolveCreateKaryawan(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["input"].(map[string]interface{})
	if input == nil {
		return nil, toResolverError(karyawan.ErrInvalidNIK)
	}

	tanggal, err := parseTanggalMasuk(stringArg(input, "tanggalMasukKaryawan"))
	if err != nil {
		return nil, toResolverError(err)
	}

	created, err := r.karyawans.CreateKaryawan(p.Context, karyawan.CreateKaryawanInput{
		NIK:          stringArg(input, "nik"),
		NamaLengkap:  stringArg(input, "NamaLengkap"),
		Alamat:       stringArg(input, "alamat"),
		NoTelepon:    stringArg(input, "noTelp"),
		TanggalMasuk: tanggal,
		DepartemenID: stringArg(input, "departemenId"),
		VendorID:     stringArg(input, "vendorId"),
	})
	if err != nil {
		return nil, toResolverError(err)
	}
	return karyawanPayload(created), nil
}

func (r *Resolver) resolveUpdateKaryawan(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	input, _ := p.Args["input"].(map[string]interface{})

	in := karyawan.UpdateKaryawanInput{ID: id}
	if input != nil {
		in.NIK = optionalStringArg(input, "nik")
		in.NamaLengkap = optionalStringArg(input, "NamaLengkap")
		in.Alamat = optionalStringArg(input, "alamat")
		in.NoTelepon = optionalStringArg(input, "noTelp")
		in.DepartemenID = optionalStringArg(input, "departemenId")
		in.VendorID = optionalStringArg(input, "vendorId")

		if raw := optionalStringArg(input, "tanggalMasukKaryawan"); raw != nil {
			tanggal, err := parseTanggalMasuk(*raw)
			if err != nil {
				return nil, toResolverError(err)
			}
			in.TanggalMasuk = &tanggal
		}
	}

	updated, err := r.karyawans.UpdateKaryawan(p.Context, in)
	if err != nil {
		return nil, toResolverError(err)
	}
	return karyawanPayload(updated), nil
}

func (r *Resolver) resolveDeleteKaryawan(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)

	deleted, err := r.karyawans.DeleteKaryawan(p.Context, karyawan.DeleteKaryawanInput{ID: id})
	if err != nil {
		return nil, toResolverError(err)
	}
	return karyawanPayload(deleted), nil
}

// karyawanPayload はエンティティを GraphQL のフィールド名に合わせた map へ変換します。
// 入社日はエポックミリ秒の文字列で返します。
func karyawanPayload(k *karyawan.Karyawan) map[string]interface{} {
	payload := map[string]interface{}{
		"id":                   k.ID,
		"nik":                  k.NIK,
		"NamaLengkap":          k.NamaLengkap,
		"alamat":               k.Alamat,
		"noTelp":               k.NoTelepon,
		"tanggalMasukKaryawan": strconv.FormatInt(k.TanggalMasuk.UnixMilli(), 10),
		"departemenId":         k.DepartemenID,
		"vendorId":             k.VendorID,
		"createdAt":            k.CreatedAt.UTC().Format(time.RFC3339),
		"updatedAt":            k.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if k.Departemen != nil {
		payload["departemen"] = map[string]interface{}{
			"id":             k.Departemen.ID,
			"namaDepartemen": k.Departemen.NamaDepartemen,
			"slugDepartemen": k.Departemen.SlugDepartemen,
		}
	}
	if k.Vendor != nil {
		payload["vendor"] = map[string]interface{}{
			"id":         k.Vendor.ID,
			"namaVendor": k.Vendor.NamaVendor,
			"slugVendor": k.Vendor.SlugVendor,
		}
	}

	return payload
}

func departemenPayload(d *departemen.Departemen) map[string]interface{} {
	return map[string]interface{}{
		"id":             d.ID,
		"namaDepartemen": d.NamaDepartemen,
		"slugDepartemen": d.SlugDepartemen,
	}
}

func vendorPayload(v *vendor.Vendor) map[string]interface{} {
	return map[string]interface{}{
		"id":         v.ID,
		"namaVendor": v.NamaVendor,
		"slugVendor": v.SlugVendor,
		"alamat":     v.Alamat,
		"noTelp":     v.NoTelepon,
	}
}

func stringArg(input map[string]interface{}, key string) string {
	value, _ := input[key].(string)
	return value
}

func optionalStringArg(input map[string]interface{}, key string) *string {
	raw, ok := input[key]
	if !ok || raw == nil {
		return nil
	}
	value, ok := raw.(string)
	if !ok {
		return nil
	}
	return &value
}

// parseTanggalMasuk はフォーム由来の日付文字列を受け付けます。
// YYYY-MM-DD、RFC3339、エポックミリ秒の数値文字列の順に解釈します。
func parseTanggalMasuk(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, karyawan.ErrInvalidTanggalMasuk
	}

	if t, err := time.Parse(dateLayout, trimmed); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return t.UTC(), nil
	}
	if millis, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return time.UnixMilli(millis).UTC(), nil
	}

	return time.Time{}, karyawan.ErrInvalidTanggalMasuk
}
